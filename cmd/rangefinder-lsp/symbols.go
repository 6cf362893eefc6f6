package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/span"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	syms := symbolsFor(doc.node)
	res := make([]interface{}, len(syms))
	for i := range syms {
		res[i] = syms[i]
	}
	return res, nil
}

func symbolsFor(n ast.Node) []protocol.DocumentSymbol {
	r, err := span.Compute(n)
	if err != nil {
		return nil
	}
	sym := protocol.DocumentSymbol{
		Name:           symbolName(n),
		Kind:           symbolKind(n),
		Range:          protoRange(r),
		SelectionRange: protoRange(r),
	}
	for _, c := range ast.Children(n) {
		sym.Children = append(sym.Children, symbolsFor(c)...)
	}
	return []protocol.DocumentSymbol{sym}
}

func symbolName(n ast.Node) string {
	switch t := n.(type) {
	case *ast.Number:
		return t.Token
	case *ast.Atom:
		return ":" + t.Name
	case *ast.String:
		return "string"
	case *ast.Var:
		return t.Name
	case *ast.QualName:
		return strings.Join(t.Segments, ".")
	case *ast.OpCall:
		return t.Op
	case *ast.Call:
		return t.Name
	case *ast.DotCall:
		return "." + t.Name
	case *ast.Sigil:
		return "~" + t.Letter
	default:
		return fmt.Sprintf("%s", n.Kind())
	}
}

func symbolKind(n ast.Node) protocol.SymbolKind {
	switch n.Kind() {
	case ast.NumberKind:
		return protocol.SymbolKindNumber
	case ast.AtomKind:
		return protocol.SymbolKindEnumMember
	case ast.StringKind, ast.InterpKind, ast.SigilKind:
		return protocol.SymbolKindString
	case ast.VarKind:
		return protocol.SymbolKindVariable
	case ast.QualNameKind:
		return protocol.SymbolKindModule
	case ast.OpCallKind:
		return protocol.SymbolKindOperator
	case ast.CallKind, ast.DotCallKind:
		return protocol.SymbolKindFunction
	case ast.IndexKind:
		return protocol.SymbolKindProperty
	case ast.KeyValKind:
		return protocol.SymbolKindField
	case ast.ListKind, ast.TupleKind, ast.BitstringKind, ast.SeqKind:
		return protocol.SymbolKindArray
	case ast.BlockKind, ast.ClauseKind:
		return protocol.SymbolKindNamespace
	default:
		return protocol.SymbolKindObject
	}
}
