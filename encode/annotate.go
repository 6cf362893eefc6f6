package encode

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/exfmt/rangefinder/ast"
)

// Annotate writes src to w with a colored marker line under each source line
// that starts one of the given spans. Entries must be labeled with a kind
// the colors table knows; the marker runs to the span's end column, or to
// the end of the line for multi-line spans.
func Annotate(w io.Writer, src string, entries []Entry, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = NewColors()
	}
	kinds := kindsByName()
	lines := strings.Split(src, "\n")
	byLine := map[int][]Entry{}
	for _, e := range entries {
		byLine[e.Range.Start.Line] = append(byLine[e.Range.Start.Line], e)
	}
	for i, line := range lines {
		ln := i + 1
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		for _, e := range byLine[ln] {
			endCol := e.Range.End.Column
			if e.Range.End.Line != ln {
				endCol = utf8.RuneCountInString(line) + 1
			}
			if endCol <= e.Range.Start.Column {
				continue
			}
			marker := strings.Repeat(" ", e.Range.Start.Column-1) +
				strings.Repeat("^", endCol-e.Range.Start.Column)
			cf := es.Color.Color(kinds[e.Kind])
			if _, err := fmt.Fprintf(w, "%s %s\n", cf("%s", marker), e.Kind); err != nil {
				return err
			}
		}
	}
	return nil
}

func kindsByName() map[string]ast.Kind {
	res := map[string]ast.Kind{}
	for _, k := range ast.Kinds() {
		res[k.String()] = k
	}
	return res
}
