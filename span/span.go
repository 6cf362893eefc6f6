package span

import (
	"strings"
	"unicode/utf8"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/debug"
)

type computeOpts struct {
	comments bool
}

// Option configures Compute.
type Option func(*computeOpts)

// IncludeComments routes the computed range through comment augmentation, so
// the result also covers the node's leading comments. Default false.
func IncludeComments(v bool) Option {
	return func(o *computeOpts) { o.comments = v }
}

// Compute returns the half-open [start, end) source range node n occupies.
// It never re-scans source text: the range is reconstructed from node
// structure and the positional metadata the parser attached. The input tree
// is not mutated and no state is kept between calls, so Compute may be
// invoked concurrently on nodes of the same tree.
//
// A tree violating the metadata contract yields an error wrapping
// ErrMalformedNode or ErrMissingMetadata.
func Compute(n ast.Node, opts ...Option) (ast.Range, error) {
	o := &computeOpts{}
	for _, opt := range opts {
		opt(o)
	}
	r, err := rangeOf(n)
	if err != nil {
		return ast.Range{}, err
	}
	if o.comments {
		r = AugmentComments(r, n)
	}
	if debug.Span() {
		debug.Logf("span: %s node -> %s\n", n.Kind(), r)
	}
	return r, nil
}

func rangeOf(n ast.Node) (ast.Range, error) {
	switch n := n.(type) {
	case *ast.Number:
		return numberRange(n)
	case *ast.Atom:
		return atomRange(n)
	case *ast.String:
		return stringRange(n)
	case *ast.Var:
		return varRange(n)
	case *ast.QualName:
		return qualNameRange(n)
	case *ast.OpCall:
		return opCallRange(n)
	case *ast.Call:
		return callRange(n)
	case *ast.DotCall:
		return dotCallRange(n)
	case *ast.Index:
		return indexRange(n)
	case *ast.KeyVal:
		return spanBetween(n.Key, n.Val)
	case *ast.Seq:
		return seqRange(n)
	case *ast.Clause:
		return clauseRange(n)
	case *ast.List:
		return closedRange(n, n.M.Closing)
	case *ast.Tuple:
		return closedRange(n, n.M.Closing)
	case *ast.Block:
		return blockRange(n)
	case *ast.Bitstring:
		return bitstringRange(n)
	case *ast.Interp:
		return interpRange(n)
	case *ast.Sigil:
		return sigilRange(n)
	}
	return ast.Range{}, malformed(n, "unrecognized shape")
}

// pos asserts that the parser recorded a start position for n.
func pos(n ast.Node) (ast.Position, error) {
	m := n.Meta()
	if !m.HasPos() {
		return ast.Position{}, missing(n, "line/column")
	}
	return m.Pos(), nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func numberRange(n *ast.Number) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	if n.Token == "" {
		return ast.Range{}, missing(n, "token")
	}
	return ast.Range{
		Start: p,
		End:   ast.Position{Line: p.Line, Column: p.Column + runeLen(n.Token)},
	}, nil
}

func atomRange(n *ast.Atom) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	delimW := runeLen(n.M.Delimiter)
	lines := strings.Split(n.Name, "\n")
	end := ast.Position{Line: p.Line}
	switch {
	case len(lines) > 1:
		// The name itself spans lines; the closing delimiter sits after
		// the last name line.
		end.Line += len(lines) - 1
		end.Column = runeLen(lines[len(lines)-1]) + delimW + 1
	case n.Quoted():
		// Colon sigil plus opening and closing delimiter.
		end.Column = p.Column + runeLen(n.Name) + delimW + 2
	default:
		// Colon sigil only.
		end.Column = p.Column + runeLen(n.Name) + 1
	}
	return ast.Range{Start: p, End: end}, nil
}

func stringRange(n *ast.String) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	if n.M.Delimiter == "" {
		return ast.Range{}, missing(n, "delimiter")
	}
	delimW := runeLen(n.M.Delimiter)
	lines := strings.Split(n.Value, "\n")
	end := ast.Position{}
	if delimW > 1 {
		// Multi-line delimiter: content ends with a newline, so the
		// closing delimiter sits on its own line, indented to the
		// opening column.
		end.Line = p.Line + len(lines)
		end.Column = p.Column + delimW
		return ast.Range{Start: p, End: end}, nil
	}
	end.Line = p.Line + len(lines) - 1
	if len(lines) == 1 {
		end.Column = p.Column + runeLen(n.Value) + delimW + 1
	} else {
		end.Column = runeLen(lines[len(lines)-1]) + delimW + 1
	}
	return ast.Range{Start: p, End: end}, nil
}

func varRange(n *ast.Var) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	return ast.Range{
		Start: p,
		End:   ast.Position{Line: p.Line, Column: p.Column + runeLen(n.Name)},
	}, nil
}

func qualNameRange(n *ast.QualName) (ast.Range, error) {
	if len(n.Segments) == 0 {
		return ast.Range{}, malformed(n, "qualified name without segments")
	}
	var start ast.Position
	if n.Base != nil {
		br, err := rangeOf(n.Base)
		if err != nil {
			return ast.Range{}, err
		}
		start = br.Start
	} else {
		p, err := pos(n)
		if err != nil {
			return ast.Range{}, err
		}
		start = p
	}
	if n.M.Last == nil {
		return ast.Range{}, missing(n, "last")
	}
	last := n.Segments[len(n.Segments)-1]
	return ast.Range{
		Start: start,
		End:   ast.Position{Line: n.M.Last.Line, Column: n.M.Last.Column + runeLen(last)},
	}, nil
}

func opCallRange(n *ast.OpCall) (ast.Range, error) {
	switch {
	case len(n.Operands) == 1 && ast.IsUnaryOp(n.Op):
		p, err := pos(n)
		if err != nil {
			return ast.Range{}, err
		}
		opr, err := rangeOf(n.Operands[0])
		if err != nil {
			return ast.Range{}, err
		}
		end := opr.End
		if end.Line != p.Line {
			// The operator prefixes only the first line; on a
			// multi-line operand its width moves to the end bound.
			end.Column += runeLen(n.Op)
		}
		return ast.Range{Start: p, End: end}, nil
	case len(n.Operands) == 2 && ast.IsBinaryOp(n.Op):
		return spanBetween(n.Operands[0], n.Operands[1])
	case len(n.Operands) == 3 && n.Op == ast.StepRangeOp:
		// The middle operand never extends past the outer two.
		return spanBetween(n.Operands[0], n.Operands[2])
	}
	return ast.Range{}, malformed(n, "operator %q applied to %d operands", n.Op, len(n.Operands))
}

// spanBetween covers from's start through to's end.
func spanBetween(from, to ast.Node) (ast.Range, error) {
	fr, err := rangeOf(from)
	if err != nil {
		return ast.Range{}, err
	}
	tr, err := rangeOf(to)
	if err != nil {
		return ast.Range{}, err
	}
	return ast.Range{Start: fr.Start, End: tr.End}, nil
}

// closingEnd resolves the end bound of a node delimited by a recorded
// closing token. The added width is the token's: 3 for an end keyword, 1 for
// a single-character closer.
func closingEnd(m *ast.Meta) (ast.Position, bool) {
	if m.End != nil {
		return ast.Position{Line: m.End.Line, Column: m.End.Column + 3}, true
	}
	if m.Closing != nil {
		return ast.Position{Line: m.Closing.Line, Column: m.Closing.Column + 1}, true
	}
	return ast.Position{}, false
}

func closedRange(n ast.Node, closing *ast.Position) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	if closing == nil {
		return ast.Range{}, missing(n, "closing")
	}
	return ast.Range{
		Start: p,
		End:   ast.Position{Line: closing.Line, Column: closing.Column + 1},
	}, nil
}

func callRange(n *ast.Call) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	if end, ok := closingEnd(&n.M); ok {
		return ast.Range{Start: p, End: end}, nil
	}
	if len(n.Args) == 0 {
		return ast.Range{Start: p, End: p}, nil
	}
	last, err := rangeOf(n.Args[len(n.Args)-1])
	if err != nil {
		return ast.Range{}, err
	}
	return ast.Range{Start: p, End: last.End}, nil
}

func dotCallRange(n *ast.DotCall) (ast.Range, error) {
	recv, err := rangeOf(n.Receiver)
	if err != nil {
		return ast.Range{}, err
	}
	if end, ok := closingEnd(&n.M); ok {
		return ast.Range{Start: recv.Start, End: end}, nil
	}
	if len(n.Args) == 0 {
		if n.NamePos.Line == 0 {
			return ast.Range{}, missing(n, "name position")
		}
		width := runeLen(n.Name)
		if n.Parens {
			width += 2
		}
		return ast.Range{
			Start: recv.Start,
			End:   ast.Position{Line: n.NamePos.Line, Column: n.NamePos.Column + width},
		}, nil
	}
	last, err := rangeOf(n.Args[len(n.Args)-1])
	if err != nil {
		return ast.Range{}, err
	}
	return ast.Range{Start: recv.Start, End: last.End}, nil
}

func indexRange(n *ast.Index) (ast.Range, error) {
	target, err := rangeOf(n.Target)
	if err != nil {
		return ast.Range{}, err
	}
	if n.M.Closing == nil {
		return ast.Range{}, missing(n, "closing")
	}
	return ast.Range{
		Start: target.Start,
		End:   ast.Position{Line: n.M.Closing.Line, Column: n.M.Closing.Column + 1},
	}, nil
}

func seqRange(n *ast.Seq) (ast.Range, error) {
	if len(n.Items) == 0 {
		return ast.Range{}, malformed(n, "empty sequence")
	}
	return spanBetween(n.Items[0], n.Items[len(n.Items)-1])
}

func clauseRange(n *ast.Clause) (ast.Range, error) {
	if n.Pattern == nil {
		return ast.Range{}, malformed(n, "clause without pattern")
	}
	if n.Body == nil {
		return ast.Range{}, malformed(n, "clause without body")
	}
	return spanBetween(n.Pattern, n.Body)
}

func blockRange(n *ast.Block) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	if end, ok := closingEnd(&n.M); ok {
		return ast.Range{Start: p, End: end}, nil
	}
	if len(n.Exprs) == 0 {
		return ast.Range{Start: p, End: p}, nil
	}
	last, err := rangeOf(n.Exprs[len(n.Exprs)-1])
	if err != nil {
		return ast.Range{}, err
	}
	return ast.Range{Start: p, End: last.End}, nil
}

func bitstringRange(n *ast.Bitstring) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	if n.M.Closing == nil {
		return ast.Range{}, missing(n, "closing")
	}
	// The closer is two characters wide.
	return ast.Range{
		Start: p,
		End:   ast.Position{Line: n.M.Closing.Line, Column: n.M.Closing.Column + 2},
	}, nil
}
