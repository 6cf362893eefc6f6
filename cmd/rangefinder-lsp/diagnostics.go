package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/span"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

// validateDocument reports a missing or undecodable sidecar tree, and any
// metadata-contract violations the span engine finds in it.
func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.treeErr != nil {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocol.Range{},
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  fmt.Sprintf("no usable syntax tree (%s): %v", sidecarName(doc.uri), doc.treeErr),
			Source:   lsName,
		})
		return diagnostics
	}
	if doc.node == nil {
		return diagnostics
	}

	ast.Visit(doc.node, func(n ast.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		_, err := span.Compute(n)
		if err == nil {
			return true, nil
		}
		d := protocol.Diagnostic{
			Severity: protocol.DiagnosticSeverityError,
			Message:  err.Error(),
			Source:   lsName,
		}
		if m := n.Meta(); m.HasPos() {
			d.Range = protocol.Range{
				Start: protoPosition(m.Pos()),
				End:   protocol.Position{Line: uint32(m.Line - 1), Character: uint32(m.Column)},
			}
		}
		diagnostics = append(diagnostics, d)
		// Keep walking; node defects are independent.
		return true, nil
	})
	return diagnostics
}

// protoPosition converts a 1-indexed character position to a 0-indexed LSP
// one. Columns are character counts; documents limited to the basic
// multilingual plane line up with LSP's UTF-16 offsets.
func protoPosition(p ast.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(p.Line - 1),
		Character: uint32(p.Column - 1),
	}
}

func protoRange(r ast.Range) protocol.Range {
	return protocol.Range{
		Start: protoPosition(r.Start),
		End:   protoPosition(r.End),
	}
}
