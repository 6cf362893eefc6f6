package ast

import "fmt"

// Position is a 1-indexed (line, column) location in source text. Columns
// count characters, not bytes.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Before reports whether p precedes q in lexicographic (line, column) order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// After reports whether p follows q.
func (p Position) After(q Position) bool {
	return q.Before(p)
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a half-open [Start, End) pair of positions bounding a node's
// source text. End is one column past the node's last character on its last
// line. Start never follows End.
type Range struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// ContainsPos reports whether pos falls inside r, treating End as exclusive.
func (r Range) ContainsPos(pos Position) bool {
	if pos.Before(r.Start) {
		return false
	}
	return pos.Before(r.End)
}

// Contains reports whether r fully contains s.
func (r Range) Contains(s Range) bool {
	if s.Start.Before(r.Start) {
		return false
	}
	return !r.End.Before(s.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
