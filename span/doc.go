// Package span computes the exact source range a syntax-tree node occupies,
// without re-scanning the source text.
//
// Compute dispatches on node shape: every syntactic category has its own
// layout rule combining the node's positional metadata with the recursively
// computed ranges of its children. The numeric corrections in those rules
// encode the widths of specific tokens (a one-character bracket, the
// two-character bitstring closer, the three-character end keyword, literal
// delimiters), so a computed range can be used to slice, highlight or
// rewrite source text directly.
//
// The computation is pure and deterministic. Trees that do not honor the
// metadata contract documented in the ast package are rejected with
// ErrMalformedNode or ErrMissingMetadata; no partial or guessed range is
// ever returned.
package span
