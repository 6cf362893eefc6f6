package span

import (
	"errors"
	"fmt"

	"github.com/exfmt/rangefinder/ast"
)

// Both error classes mark a broken contract between the tree producer and
// this package, not a recoverable condition. Callers get no partial range: a
// plausible but wrong span is worse for text-editing consumers than a loud
// failure.
var (
	ErrMalformedNode   = errors.New("malformed node")
	ErrMissingMetadata = errors.New("missing metadata")
)

// MalformedNodeError reports a node whose shape matches no layout rule:
// an unrecognized operator, wrong operand count, or an empty bare sequence.
type MalformedNodeError struct {
	Node   ast.Node
	Reason string
}

func (e *MalformedNodeError) Unwrap() error {
	return ErrMalformedNode
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("%s: %s node: %s", ErrMalformedNode.Error(), e.Node.Kind(), e.Reason)
}

func malformed(n ast.Node, format string, args ...any) error {
	return &MalformedNodeError{Node: n, Reason: fmt.Sprintf(format, args...)}
}

// MissingMetadataError reports a node lacking a metadata field its matched
// layout rule requires.
type MissingMetadataError struct {
	Node  ast.Node
	Field string
}

func (e *MissingMetadataError) Unwrap() error {
	return ErrMissingMetadata
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("%s: %s node needs %q", ErrMissingMetadata.Error(), e.Node.Kind(), e.Field)
}

func missing(n ast.Node, field string) error {
	return &MissingMetadataError{Node: n, Field: field}
}
