package span

import (
	"strings"

	"github.com/exfmt/rangefinder/ast"
)

// Interpolated literals are laid out by walking their segments left to
// right from the node's own position. Literal text advances the cursor by
// its embedded newlines and trailing-line length; an embedded expression
// jumps the cursor to its recorded closing brace. A final correction then
// accounts for the closing delimiter, whose placement depends on whether the
// delimiter is multi-line and whether any expression was embedded.

func interpRange(n *ast.Interp) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	if n.M.Delimiter == "" {
		return ast.Range{}, missing(n, "delimiter")
	}
	end, hasExpr, err := walkSegments(n, p, n.Segments)
	if err != nil {
		return ast.Range{}, err
	}
	end = interpFinal(end, n.M.Delimiter, hasExpr)
	return ast.Range{Start: p, End: end}, nil
}

func sigilRange(n *ast.Sigil) (ast.Range, error) {
	p, err := pos(n)
	if err != nil {
		return ast.Range{}, err
	}
	if n.M.Delimiter == "" {
		return ast.Range{}, missing(n, "delimiter")
	}
	end, hasExpr, err := walkSegments(n, p, n.Segments)
	if err != nil {
		return ast.Range{}, err
	}
	end = interpFinal(end, n.M.Delimiter, hasExpr)
	end.Column += runeLen(n.Modifiers)
	multi := runeLen(n.M.Delimiter) > 1
	switch {
	case multi && !hasExpr:
		// Without embedded expressions the body carries no leading
		// newline, so the closing line is one further down; the closing
		// delimiter is indented to the start column.
		end.Line++
		end.Column = p.Column + 3
	case multi || hasExpr:
		// Already accounted for by the walk.
	default:
		// Prefix marker (~ plus letter) on a single-line literal.
		end.Column += 2
	}
	return ast.Range{Start: p, End: end}, nil
}

// interpFinal applies the closing-delimiter correction after the segment
// walk.
func interpFinal(end ast.Position, delimiter string, hasExpr bool) ast.Position {
	switch {
	case runeLen(delimiter) > 1 && hasExpr:
		end.Column = runeLen(delimiter) + 1
	case hasExpr:
		end.Column++
	default:
		end.Column += 2
	}
	return end
}

// walkSegments advances cur across segs and reports whether any segment was
// an embedded expression.
func walkSegments(n ast.Node, cur ast.Position, segs []ast.Segment) (ast.Position, bool, error) {
	hasExpr := false
	for _, seg := range segs {
		switch seg := seg.(type) {
		case ast.Text:
			txt := string(seg)
			if k := strings.Count(txt, "\n"); k > 0 {
				cur.Line += k
				tail := txt[strings.LastIndexByte(txt, '\n')+1:]
				cur.Column = runeLen(tail) + 1
			} else {
				cur.Column += runeLen(txt)
			}
		case *ast.Embed:
			hasExpr = true
			if seg.M.Closing == nil {
				return ast.Position{}, false, missing(n, "segment closing")
			}
			// One past the segment's closing brace.
			cur = ast.Position{Line: seg.M.Closing.Line, Column: seg.M.Closing.Column + 1}
		default:
			return ast.Position{}, false, malformed(n, "unrecognized segment %T", seg)
		}
	}
	return cur, hasExpr, nil
}
