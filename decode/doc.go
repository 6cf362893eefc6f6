// Package decode reads serialized syntax trees produced by the external
// parser into ast nodes.
//
// # Wire format
//
// A tree document is one JSON or YAML object per node:
//
//	{
//	  "kind": "call",
//	  "name": "foo",
//	  "meta": {"line": 1, "column": 1, "closing": {"line": 1, "column": 9}},
//	  "args": [
//	    {"kind": "number", "token": "1", "meta": {"line": 1, "column": 5}},
//	    {"kind": "number", "token": "2", "meta": {"line": 1, "column": 8}}
//	  ]
//	}
//
// The kind field names the node category; the remaining payload fields
// depend on it:
//
//	number     token
//	atom       name
//	string     value
//	var        name
//	qualname   base (node, optional), path (segment texts)
//	op         name, operands
//	call       name, args
//	dotcall    receiver, name, name_pos, parens, args
//	index      target, args
//	keyval     key, val
//	seq        items
//	clause     pattern, body
//	list       items
//	tuple      items
//	block      exprs
//	bitstring  elems
//	interp     segments
//	sigil      letter, modifiers, segments
//
// Interpolation segments are {"text": "..."} for literal text and
// {"expr": node, "meta": {...}} for an embedded expression, where meta
// carries the position of the segment's closing brace.
//
// Meta keys are line, column, closing, end, delimiter, last, no_parens and
// leading_comments, all optional, matching ast.Meta.
//
// Decoding validates structure the range engine cannot recover from
// gracefully (unknown kinds, operator tags that fail classification,
// operand counts that match no operator arity) and rejects such documents
// with an error wrapping ErrDecode. Positional metadata is not validated
// here; its presence is asserted per layout rule by the span package.
package decode
