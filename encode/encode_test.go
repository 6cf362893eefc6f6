package encode

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/format"
)

var testEntries = []Entry{
	{
		Kind: "call",
		Range: ast.Range{
			Start: ast.Position{Line: 1, Column: 1},
			End:   ast.Position{Line: 1, Column: 10},
		},
		Text: "foo(1, 2)",
	},
	{
		Kind: "number",
		Range: ast.Range{
			Start: ast.Position{Line: 1, Column: 5},
			End:   ast.Position{Line: 1, Column: 6},
		},
	},
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(testEntries, &buf); err != nil {
		t.Fatal(err)
	}
	var back []Entry
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(testEntries, back); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(testEntries, &buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"kind: call", "kind: number", "line: 1", "column: 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnnotate(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = true

	var buf bytes.Buffer
	if err := Annotate(&buf, "foo(1, 2)", testEntries); err != nil {
		t.Fatal(err)
	}
	want := "foo(1, 2)\n" +
		"^^^^^^^^^ call\n" +
		"    ^ number\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("annotation (-want +got):\n%s", d)
	}
}

func TestAnnotateMultiline(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)
	color.NoColor = true

	entries := []Entry{
		{
			Kind: "list",
			Range: ast.Range{
				Start: ast.Position{Line: 1, Column: 1},
				End:   ast.Position{Line: 2, Column: 2},
			},
		},
	}
	var buf bytes.Buffer
	if err := Annotate(&buf, "[1,\n 2]", entries); err != nil {
		t.Fatal(err)
	}
	// The marker stops at the first line's width for multi-line spans.
	want := "[1,\n^^^ list\n 2]\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("annotation (-want +got):\n%s", d)
	}
}

func TestColorsCoverAllKinds(t *testing.T) {
	c := NewColors()
	for _, k := range ast.Kinds() {
		if c.Color(k) == nil {
			t.Errorf("no color for %v", k)
		}
	}
}
