package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/format"
)

// Entry is one computed span: the node's category plus its source range and,
// when the caller sliced the source, the covered text.
type Entry struct {
	Kind  string    `json:"kind" yaml:"kind"`
	Range ast.Range `json:"range" yaml:"range"`
	Text  string    `json:"text,omitempty" yaml:"text,omitempty"`
}

type EncState struct {
	format format.Format
	Color  *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c }
}

// Encode writes entries to w in the configured format (JSON by default).
func Encode(entries []Entry, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		d, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
		return err
	}
}
