package ast

import "testing"

func TestPositionOrder(t *testing.T) {
	type orderTest struct {
		p, q   Position
		before bool
	}
	tests := []orderTest{
		{p: Position{1, 1}, q: Position{1, 2}, before: true},
		{p: Position{1, 9}, q: Position{2, 1}, before: true},
		{p: Position{2, 1}, q: Position{1, 9}, before: false},
		{p: Position{3, 4}, q: Position{3, 4}, before: false},
	}
	for _, tc := range tests {
		if got := tc.p.Before(tc.q); got != tc.before {
			t.Errorf("%s.Before(%s) = %v, want %v", tc.p, tc.q, got, tc.before)
		}
		if got := tc.q.After(tc.p); got != tc.before {
			t.Errorf("%s.After(%s) = %v, want %v", tc.q, tc.p, got, tc.before)
		}
	}
}

func TestRangeContainsPos(t *testing.T) {
	r := Range{Start: Position{2, 3}, End: Position{4, 1}}
	type posTest struct {
		pos Position
		in  bool
	}
	tests := []posTest{
		{pos: Position{2, 3}, in: true}, // start is inclusive
		{pos: Position{3, 1}, in: true},
		{pos: Position{3, 99}, in: true},
		{pos: Position{4, 1}, in: false}, // end is exclusive
		{pos: Position{2, 2}, in: false},
		{pos: Position{1, 9}, in: false},
		{pos: Position{4, 2}, in: false},
	}
	for _, tc := range tests {
		if got := r.ContainsPos(tc.pos); got != tc.in {
			t.Errorf("%s.ContainsPos(%s) = %v, want %v", r, tc.pos, got, tc.in)
		}
	}
}

func TestRangeContains(t *testing.T) {
	outer := Range{Start: Position{1, 1}, End: Position{3, 5}}
	type rangeTest struct {
		inner Range
		in    bool
	}
	tests := []rangeTest{
		{inner: outer, in: true},
		{inner: Range{Start: Position{1, 2}, End: Position{2, 1}}, in: true},
		{inner: Range{Start: Position{3, 1}, End: Position{3, 5}}, in: true},
		{inner: Range{Start: Position{1, 1}, End: Position{3, 6}}, in: false},
		{inner: Range{Start: Position{0, 9}, End: Position{2, 1}}, in: false},
	}
	for _, tc := range tests {
		if got := outer.Contains(tc.inner); got != tc.in {
			t.Errorf("%s.Contains(%s) = %v, want %v", outer, tc.inner, got, tc.in)
		}
	}
}

func TestRangeString(t *testing.T) {
	r := Range{Start: Position{1, 2}, End: Position{3, 4}}
	if got := r.String(); got != "1:2-3:4" {
		t.Errorf("got %q", got)
	}
}
