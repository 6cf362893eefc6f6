package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/span"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	chain := nodesAt(doc.node, astPosition(params.Position))
	if len(chain) == 0 {
		return nil, nil
	}
	innermost := chain[len(chain)-1]
	r, err := span.Compute(innermost.node, span.IncludeComments(true))
	if err != nil {
		r = innermost.rng
	}
	text, _ := ast.SliceText(doc.content, innermost.rng)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind: protocol.Markdown,
			Value: fmt.Sprintf("**%s** `%s` (with comments `%s`)\n```\n%s\n```",
				innermost.node.Kind(), innermost.rng, r, text),
		},
	}, nil
}

// astPosition converts a 0-indexed LSP position to the 1-indexed character
// convention.
func astPosition(p protocol.Position) ast.Position {
	return ast.Position{
		Line:   int(p.Line) + 1,
		Column: int(p.Character) + 1,
	}
}

type nodeSpan struct {
	node ast.Node
	rng  ast.Range
}

// nodesAt returns the chain of nodes whose ranges contain pos, outermost
// first. Nodes the engine rejects are skipped rather than failing the
// request: the diagnostics pass already reported them.
func nodesAt(root ast.Node, pos ast.Position) []nodeSpan {
	r, err := span.Compute(root)
	if err != nil || !r.ContainsPos(pos) {
		return nil
	}
	chain := []nodeSpan{{node: root, rng: r}}
	for {
		cur := chain[len(chain)-1]
		advanced := false
		for _, c := range ast.Children(cur.node) {
			cr, err := span.Compute(c)
			if err != nil || !cr.ContainsPos(pos) {
				continue
			}
			chain = append(chain, nodeSpan{node: c, rng: cr})
			advanced = true
			break
		}
		if !advanced {
			return chain
		}
	}
}
