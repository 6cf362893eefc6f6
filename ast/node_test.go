package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func m(line, col int) Meta {
	return Meta{Line: line, Column: col}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds() {
		if s := k.String(); s == "" || s[0] == '<' {
			t.Errorf("kind %d has no name", int(k))
		}
	}
	if s := Kind(99).String(); s != "<unknown kind 99>" {
		t.Errorf("unknown kind: got %q", s)
	}
}

func TestChildrenOrder(t *testing.T) {
	a := NewVar(m(1, 1), "a")
	b := NewVar(m(1, 5), "b")
	c := NewVar(m(1, 9), "c")

	type childTest struct {
		name string
		node Node
		want []Node
	}
	tests := []childTest{
		{name: "leaf", node: NewNumber(m(1, 1), "1"), want: nil},
		{name: "opcall", node: NewOpCall(m(1, 3), "+", a, b), want: []Node{a, b}},
		{name: "call", node: NewCall(m(1, 1), "f", a, b, c), want: []Node{a, b, c}},
		{
			name: "dotcall-receiver-first",
			node: NewDotCall(Meta{}, a, "f", Position{Line: 1, Column: 3}, true, b, c),
			want: []Node{a, b, c},
		},
		{
			name: "index-target-first",
			node: NewIndex(Meta{Closing: &Position{Line: 1, Column: 9}}, a, b),
			want: []Node{a, b},
		},
		{name: "keyval", node: NewKeyVal(Meta{}, a, b), want: []Node{a, b}},
		{name: "clause", node: NewClause(m(1, 3), a, b), want: []Node{a, b}},
		{name: "qualname-no-base", node: NewQualName(m(1, 1), nil, "Foo"), want: nil},
		{name: "qualname-base", node: NewQualName(Meta{}, a, "f"), want: []Node{a}},
		{
			name: "interp-embeds-only",
			node: NewInterp(Meta{Line: 1, Column: 1, Delimiter: `"`},
				Text("x"),
				&Embed{M: Meta{Closing: &Position{Line: 1, Column: 6}}, Expr: b},
				Text("y")),
			want: []Node{b},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Children(tc.node)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d children, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("child %d: got %v, want %v", i, got[i].Kind(), tc.want[i].Kind())
				}
			}
		})
	}
}

func TestVisitOrder(t *testing.T) {
	tree := NewList(Meta{Line: 1, Column: 1, Closing: &Position{Line: 1, Column: 12}},
		NewOpCall(m(1, 4), "+",
			NewVar(m(1, 2), "a"),
			NewVar(m(1, 6), "b")),
		NewNumber(m(1, 9), "10"))

	var pre, post []Kind
	err := Visit(tree, func(n Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Kind())
		} else {
			pre = append(pre, n.Kind())
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	wantPre := []Kind{ListKind, OpCallKind, VarKind, VarKind, NumberKind}
	wantPost := []Kind{VarKind, VarKind, OpCallKind, NumberKind, ListKind}
	if d := cmp.Diff(wantPre, pre); d != "" {
		t.Errorf("pre-order (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wantPost, post); d != "" {
		t.Errorf("post-order (-want +got):\n%s", d)
	}
}

func TestVisitSkipsChildren(t *testing.T) {
	tree := NewCall(m(1, 1), "f",
		NewCall(m(1, 3), "g", NewVar(m(1, 5), "x")))
	var seen []Kind
	err := Visit(tree, func(n Node, isPost bool) (bool, error) {
		if !isPost {
			seen = append(seen, n.Kind())
		}
		return n.Kind() != CallKind || len(seen) == 1, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{CallKind, CallKind}
	if d := cmp.Diff(want, seen); d != "" {
		t.Errorf("visited (-want +got):\n%s", d)
	}
}
