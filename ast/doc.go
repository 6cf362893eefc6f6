// Package ast defines the node tree over which source ranges are computed.
//
// # Overview
//
// A tree is produced by an external parser and handed to this module in
// serialized form (see the decode package). Nodes are tagged variants: each
// syntactic category (literal, identifier, operator application, call,
// delimited container, interpolated literal, ...) has its own concrete type
// implementing Node. Every node carries a Meta record holding the positional
// facts the parser attached to it: its own 1-indexed start position and,
// depending on the category, the position of its closing token, the literal
// delimiter text, the start of the last segment of a qualified name, and any
// leading comments.
//
// Nodes and their metadata are immutable inputs. Nothing in this module
// writes to a tree after decoding; range computation (see the span package)
// is a pure function over it, so trees may be shared freely between
// goroutines.
//
// # Positions and ranges
//
// Position line and column are 1-indexed and columns count characters
// (runes), not bytes. A Range is half-open: End names the column one past the
// node's last character on its last line, so source text can be sliced
// directly with [start, end).
package ast
