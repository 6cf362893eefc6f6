package main

import (
	"os"
	"strings"
	"sync"

	"go.lsp.dev/uri"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/decode"
)

// A document pairs an open source file with the syntax tree its parser
// dumped alongside it (<file>.ast.json or <file>.ast.yaml). The server never
// parses the source itself; a missing or stale sidecar is reported through
// diagnostics.
type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	node    ast.Node
	treeErr error
}

func (ds *documentStore) get(u string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[u]
}

func (ds *documentStore) put(u string, content string, version int32) {
	node, err := loadSidecar(u)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[u] = &document{
		uri:     u,
		content: content,
		version: version,
		node:    node,
		treeErr: err,
	}
}

// reload re-reads the sidecar tree, keeping the stored content.
func (ds *documentStore) reload(u string) {
	node, err := loadSidecar(u)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	doc := ds.docs[u]
	if doc == nil {
		return
	}
	doc.node = node
	doc.treeErr = err
}

func (ds *documentStore) remove(u string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, u)
}

func loadSidecar(u string) (ast.Node, error) {
	path := uri.New(u).Filename()
	for _, sidecar := range []string{path + ".ast.json", path + ".ast.yaml"} {
		if _, err := os.Stat(sidecar); err != nil {
			continue
		}
		return decode.DecodeFile(sidecar)
	}
	// Fall back to the json name for the error message.
	_, err := os.Stat(path + ".ast.json")
	return nil, err
}

// sidecarName is used in user-facing diagnostics.
func sidecarName(u string) string {
	path := uri.New(u).Filename()
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	return path + ".ast.json"
}
