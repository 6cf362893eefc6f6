package decode

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/format"
	"github.com/exfmt/rangefinder/span"
)

// foo(1, 2) with the closing paren at column 9.
const callJSON = `{
  "kind": "call",
  "name": "foo",
  "meta": {"line": 1, "column": 1, "closing": {"line": 1, "column": 9}},
  "args": [
    {"kind": "number", "token": "1", "meta": {"line": 1, "column": 5}},
    {"kind": "number", "token": "2", "meta": {"line": 1, "column": 8}}
  ]
}`

func TestDecodeCall(t *testing.T) {
	n, err := Decode([]byte(callJSON))
	if err != nil {
		t.Fatal(err)
	}
	call, ok := n.(*ast.Call)
	if !ok {
		t.Fatalf("got %T, want *ast.Call", n)
	}
	if call.Name != "foo" || len(call.Args) != 2 {
		t.Fatalf("got %s/%d args", call.Name, len(call.Args))
	}
	r, err := span.Compute(n)
	if err != nil {
		t.Fatal(err)
	}
	want := ast.Range{
		Start: ast.Position{Line: 1, Column: 1},
		End:   ast.Position{Line: 1, Column: 10},
	}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("range mismatch (-want +got):\n%s", d)
	}
}

const opYAML = `kind: op
name: +
meta:
  line: 1
  column: 3
operands:
  - kind: var
    name: a
    meta: {line: 1, column: 1}
  - kind: var
    name: b
    meta: {line: 1, column: 5}
`

func TestDecodeYAML(t *testing.T) {
	n, err := Decode([]byte(opYAML), DecodeYAML())
	if err != nil {
		t.Fatal(err)
	}
	op, ok := n.(*ast.OpCall)
	if !ok {
		t.Fatalf("got %T, want *ast.OpCall", n)
	}
	if op.Op != "+" || len(op.Operands) != 2 {
		t.Fatalf("got %q/%d operands", op.Op, len(op.Operands))
	}
	r, err := span.Compute(n)
	if err != nil {
		t.Fatal(err)
	}
	want := ast.Range{
		Start: ast.Position{Line: 1, Column: 1},
		End:   ast.Position{Line: 1, Column: 6},
	}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("range mismatch (-want +got):\n%s", d)
	}
}

const sigilJSON = `{
  "kind": "sigil",
  "letter": "s",
  "modifiers": "m",
  "meta": {"line": 1, "column": 1, "delimiter": "/"},
  "segments": [
    {"text": "a"},
    {
      "expr": {"kind": "var", "name": "x", "meta": {"line": 1, "column": 7}},
      "meta": {"closing": {"line": 1, "column": 8}}
    }
  ]
}`

func TestDecodeSigil(t *testing.T) {
	n, err := Decode([]byte(sigilJSON))
	if err != nil {
		t.Fatal(err)
	}
	sig, ok := n.(*ast.Sigil)
	if !ok {
		t.Fatalf("got %T, want *ast.Sigil", n)
	}
	if sig.Letter != "s" || sig.Modifiers != "m" || len(sig.Segments) != 2 {
		t.Fatalf("letter %q modifiers %q segments %d", sig.Letter, sig.Modifiers, len(sig.Segments))
	}
	if _, ok := sig.Segments[0].(ast.Text); !ok {
		t.Errorf("segment 0: got %T, want ast.Text", sig.Segments[0])
	}
	em, ok := sig.Segments[1].(*ast.Embed)
	if !ok {
		t.Fatalf("segment 1: got %T, want *ast.Embed", sig.Segments[1])
	}
	if em.M.Closing == nil || em.M.Closing.Column != 8 {
		t.Errorf("embed closing: %+v", em.M.Closing)
	}
}

func TestDecodeMetaFields(t *testing.T) {
	in := `{
  "kind": "var",
  "name": "x",
  "meta": {
    "line": 3,
    "column": 2,
    "leading_comments": [
      {"line": 1, "text": "# no column recorded"},
      {"line": 2, "column": 2, "text": "# aligned"}
    ]
  }
}`
	n, err := Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	m := n.Meta()
	if len(m.Comments) != 2 {
		t.Fatalf("got %d comments", len(m.Comments))
	}
	if m.Comments[0].Col() != 1 {
		t.Errorf("defaulted column: got %d, want 1", m.Comments[0].Col())
	}
	if m.Comments[1].Col() != 2 {
		t.Errorf("recorded column: got %d, want 2", m.Comments[1].Col())
	}
}

type decodeErrTest struct {
	name string
	in   string
}

var decodeErrTests = []decodeErrTest{
	{name: "bad-json", in: `{"kind": `},
	{name: "unknown-kind", in: `{"kind": "wat"}`},
	{name: "null-arg", in: `{"kind": "call", "name": "f", "args": [null]}`},
	{name: "qualname-no-path", in: `{"kind": "qualname"}`},
	{name: "dotcall-no-receiver", in: `{"kind": "dotcall", "name": "f"}`},
	{name: "index-no-target", in: `{"kind": "index"}`},
	{name: "keyval-missing-val", in: `{"kind": "keyval", "key": {"kind": "var", "name": "x"}}`},
	{name: "clause-missing-body", in: `{"kind": "clause", "pattern": {"kind": "var", "name": "x"}}`},
	{
		name: "unknown-op",
		in:   `{"kind": "op", "name": "%%%", "operands": [{"kind": "var", "name": "a"}, {"kind": "var", "name": "b"}]}`,
	},
	{
		name: "binary-op-one-operand",
		in:   `{"kind": "op", "name": "*", "operands": [{"kind": "var", "name": "a"}]}`,
	},
	{
		name: "segment-both-text-and-expr",
		in:   `{"kind": "interp", "segments": [{"text": "a", "expr": {"kind": "var", "name": "x"}}]}`,
	},
	{
		name: "segment-empty",
		in:   `{"kind": "interp", "segments": [{}]}`,
	},
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range decodeErrTests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("got %v, want ErrDecode", err)
			}
		})
	}
}

func TestDecodeFormatOption(t *testing.T) {
	// YAML input through the JSON path must fail rather than misparse.
	if _, err := Decode([]byte(opYAML), DecodeFormat(format.JSONFormat)); err == nil {
		t.Error("expected error decoding YAML as JSON")
	}
	if _, err := Decode([]byte(callJSON), DecodeJSON()); err != nil {
		t.Errorf("explicit JSON: %v", err)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte(callJSON))
	f.Add([]byte(sigilJSON))
	f.Add([]byte(`{"kind": "number", "token": "42", "meta": {"line": 1, "column": 1}}`))
	f.Add([]byte(`{}`))
	f.Fuzz(func(t *testing.T, data []byte) {
		n, err := Decode(data)
		if err != nil {
			return
		}
		// Whatever decodes either computes a range or fails with the
		// engine's own error taxonomy.
		if _, err := span.Compute(n); err != nil {
			if !errors.Is(err, span.ErrMalformedNode) && !errors.Is(err, span.ErrMissingMetadata) {
				t.Errorf("unexpected error class: %v", err)
			}
		}
	})
}
