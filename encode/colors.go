package encode

import (
	"github.com/fatih/color"

	"github.com/exfmt/rangefinder/ast"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ast.Kind]func(string, ...any) string
}

func colorDefault(s string, args ...any) string {
	return color.WhiteString(s, args...)
}

// NewColors builds the default kind-to-color table used by annotated views.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[ast.Kind]func(string, ...any) string{},
	}
	literal := color.RGB(8, 196, 16).SprintfFunc()
	for _, k := range []ast.Kind{ast.NumberKind, ast.AtomKind, ast.StringKind} {
		colors.Map[k] = literal
	}
	interp := color.RGB(198, 198, 46).SprintfFunc()
	for _, k := range []ast.Kind{ast.InterpKind, ast.SigilKind, ast.BitstringKind} {
		colors.Map[k] = interp
	}
	colors.Map[ast.VarKind] = color.CyanString
	colors.Map[ast.QualNameKind] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[ast.OpCallKind] = color.RGB(255, 0, 196).SprintfFunc()
	call := color.RGB(128, 216, 236).SprintfFunc()
	for _, k := range []ast.Kind{ast.CallKind, ast.DotCallKind, ast.IndexKind} {
		colors.Map[k] = call
	}
	container := color.RGB(196, 168, 128).SprintfFunc()
	for _, k := range []ast.Kind{ast.ListKind, ast.TupleKind, ast.BlockKind, ast.SeqKind} {
		colors.Map[k] = container
	}
	pair := color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[ast.KeyValKind] = pair
	colors.Map[ast.ClauseKind] = pair
	return colors
}

// Color returns the rendering function for kind k.
func (c *Colors) Color(k ast.Kind) func(string, ...any) string {
	if f, ok := c.Map[k]; ok {
		return f
	}
	return c.Default
}
