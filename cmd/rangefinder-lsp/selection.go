package main

import (
	"context"
	"encoding/json"
	"fmt"

	"go.lsp.dev/protocol"
)

// selectionRangeParams is not part of the v0.12 Server interface, so the
// request arrives through the generic dispatcher and is decoded here.
type selectionRangeParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
	Positions    []protocol.Position             `json:"positions"`
}

type selectionRange struct {
	Range  protocol.Range  `json:"range"`
	Parent *selectionRange `json:"parent,omitempty"`
}

func (s *Server) Request(ctx context.Context, method string, params interface{}) (interface{}, error) {
	switch method {
	case "textDocument/selectionRange":
		var p selectionRangeParams
		raw, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return s.selectionRanges(&p)
	default:
		return nil, fmt.Errorf("unsupported method: %s", method)
	}
}

func (s *Server) selectionRanges(p *selectionRangeParams) ([]*selectionRange, error) {
	doc := s.docs.get(string(p.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	res := make([]*selectionRange, len(p.Positions))
	for i, pos := range p.Positions {
		chain := nodesAt(doc.node, astPosition(pos))
		// Innermost first, each parent pointing one node outward.
		var outer *selectionRange
		for _, ns := range chain {
			outer = &selectionRange{Range: protoRange(ns.rng), Parent: outer}
		}
		if outer == nil {
			outer = &selectionRange{Range: protocol.Range{Start: pos, End: pos}}
		}
		res[i] = outer
	}
	return res, nil
}
