package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/encode"
)

func testTree() ast.Node {
	// foo(a + 1, [2, 3]) with the closing paren at (1,18)
	return ast.NewCall(
		ast.Meta{Line: 1, Column: 1, Closing: &ast.Position{Line: 1, Column: 18}},
		"foo",
		ast.NewOpCall(ast.Meta{Line: 1, Column: 7}, "+",
			ast.NewVar(ast.Meta{Line: 1, Column: 5}, "a"),
			ast.NewNumber(ast.Meta{Line: 1, Column: 9}, "1")),
		ast.NewList(
			ast.Meta{Line: 1, Column: 12, Closing: &ast.Position{Line: 1, Column: 17}},
			ast.NewNumber(ast.Meta{Line: 1, Column: 13}, "2"),
			ast.NewNumber(ast.Meta{Line: 1, Column: 16}, "3")))
}

func TestCollect(t *testing.T) {
	src := "foo(a + 1, [2, 3])"
	entries, err := collect(testTree(), nil, src, nil)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []string
	for _, e := range entries {
		kinds = append(kinds, e.Kind)
	}
	want := []string{"call", "op", "var", "number", "list", "number", "number"}
	if d := cmp.Diff(want, kinds); d != "" {
		t.Errorf("kinds (-want +got):\n%s", d)
	}
	if entries[0].Text != src {
		t.Errorf("root text: got %q", entries[0].Text)
	}
	if entries[1].Text != "a + 1" {
		t.Errorf("op text: got %q", entries[1].Text)
	}
	if entries[4].Text != "[2, 3]" {
		t.Errorf("list text: got %q", entries[4].Text)
	}
}

func TestCollectMatch(t *testing.T) {
	type matchTest struct {
		expr string
		want []string
	}
	tests := []matchTest{
		{expr: `kind == "number"`, want: []string{"number", "number", "number"}},
		{expr: `depth == 1`, want: []string{"call"}},
		{expr: `start.column >= 12`, want: []string{"list", "number", "number"}},
		{expr: `lines > 1`, want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			prg, err := compileMatch(tc.expr)
			if err != nil {
				t.Fatal(err)
			}
			entries, err := collect(testTree(), prg, "", nil)
			if err != nil {
				t.Fatal(err)
			}
			var kinds []string
			for _, e := range entries {
				kinds = append(kinds, e.Kind)
			}
			if d := cmp.Diff(tc.want, kinds); d != "" {
				t.Errorf("kinds (-want +got):\n%s", d)
			}
		})
	}
}

func TestCompileMatchRejectsNonBool(t *testing.T) {
	if _, err := compileMatch(`kind`); err == nil {
		t.Error("expected error compiling a non-bool expression")
	}
}

func TestResolvePath(t *testing.T) {
	tree := testTree()
	type pathTest struct {
		path string
		want ast.Kind
		err  bool
	}
	tests := []pathTest{
		{path: ".", want: ast.CallKind},
		{path: "0", want: ast.OpCallKind},
		{path: "0.1", want: ast.NumberKind},
		{path: "1.0", want: ast.NumberKind},
		{path: "2", err: true},
		{path: "0.0.0", err: true},
		{path: "x", err: true},
	}
	for _, tc := range tests {
		n, err := resolvePath(tree, tc.path)
		if tc.err {
			if err == nil {
				t.Errorf("resolvePath(%q): expected error", tc.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("resolvePath(%q): %v", tc.path, err)
			continue
		}
		if n.Kind() != tc.want {
			t.Errorf("resolvePath(%q) = %v, want %v", tc.path, n.Kind(), tc.want)
		}
	}
}

func TestCheckReport(t *testing.T) {
	entries := []encode.Entry{
		{Kind: "string", Range: ast.Range{
			Start: ast.Position{Line: 1, Column: 1},
			End:   ast.Position{Line: 2, Column: 3},
		}, Text: "\"a\nb\""},
	}
	got := checkReport(entries)
	want := "string 1:1-2:3 \"a\\nb\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
