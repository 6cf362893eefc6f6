package span

import "github.com/exfmt/rangefinder/ast"

// AugmentComments widens base so it also covers n's leading comments. The
// start moves up to the first comment; the end widens only when the last
// comment sits on the node's own start line (a trailing comment on the
// opening line). Comments without a recorded column default to column 1.
// Re-applying with the same comment list is a no-op: the widened bounds only
// take minima and maxima, and the trailing test uses the node's own start
// line, never the widened one.
func AugmentComments(base ast.Range, n ast.Node) ast.Range {
	comments := n.Meta().Comments
	if len(comments) == 0 {
		return base
	}
	first := comments[0]
	last := comments[len(comments)-1]
	res := base
	res.Start.Line = first.Line
	res.Start.Column = min(base.Start.Column, first.Col())
	if last.Line == startLine(n, base) {
		res.End.Column = max(base.End.Column, last.Col()+runeLen(last.Text))
	}
	return res
}

// startLine is the line the node itself starts on. Nodes whose span is
// derived from their children (pairs, sequences, operator applications)
// carry no position of their own, so it is recomputed from the node rather
// than read from base, which may already be widened.
func startLine(n ast.Node, base ast.Range) int {
	if n.Meta().HasPos() {
		return n.Meta().Line
	}
	if r, err := rangeOf(n); err == nil {
		return r.Start.Line
	}
	return base.Start.Line
}
