package ast

// Comment is a single leading comment attached by the parser. A zero Column
// means the parser did not record one; consumers default it to column 1.
type Comment struct {
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
	Text   string `json:"text" yaml:"text"`
}

// Col returns the comment's column, defaulting to 1 when absent.
func (c Comment) Col() int {
	if c.Column == 0 {
		return 1
	}
	return c.Column
}

// Meta holds the positional and structural facts the parser attached to a
// node. Fields are independently optional; a zero Line means the node carries
// no position at all. Which fields a node must carry depends on its category
// and is asserted by the span package when the matching rule needs them.
type Meta struct {
	// Line and Column locate the node's own token, 1-indexed.
	Line   int `json:"line,omitempty" yaml:"line,omitempty"`
	Column int `json:"column,omitempty" yaml:"column,omitempty"`

	// Closing is the position of a closing bracket, parenthesis, brace or
	// bitstring closer when the node is delimited.
	Closing *Position `json:"closing,omitempty" yaml:"closing,omitempty"`

	// End is the position of a block-terminating end keyword. It is kept
	// apart from Closing because the two tokens have different widths.
	End *Position `json:"end,omitempty" yaml:"end,omitempty"`

	// Delimiter is the literal delimiter text of a string, quoted symbol
	// or custom literal form, e.g. `"`, `"""` or `/`.
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`

	// Last is the start position of the final segment of a multi-segment
	// qualified name.
	Last *Position `json:"last,omitempty" yaml:"last,omitempty"`

	// NoParens marks a call written without parentheses.
	NoParens bool `json:"no_parens,omitempty" yaml:"no_parens,omitempty"`

	// Comments are the leading comments attached before the node, in
	// source order.
	Comments []Comment `json:"leading_comments,omitempty" yaml:"leading_comments,omitempty"`
}

// HasPos reports whether the parser recorded a start position for the node.
func (m *Meta) HasPos() bool {
	return m.Line > 0
}

// Pos returns the node's own start position.
func (m *Meta) Pos() Position {
	return Position{Line: m.Line, Column: m.Column}
}
