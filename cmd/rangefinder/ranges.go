package main

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/decode"
	"github.com/exfmt/rangefinder/encode"
	"github.com/exfmt/rangefinder/span"
)

func ranges(cfg *RangesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ranges.Parse(cc, args)
	if err != nil {
		return err
	}
	matcher, err := compileMatch(cfg.Match)
	if err != nil {
		return err
	}
	var src string
	if cfg.Src != "" {
		d, err := os.ReadFile(cfg.Src)
		if err != nil {
			return err
		}
		src = string(d)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, err := decodeArg(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		entries, err := collect(node, matcher, src, spanOpts(cfg.Comments))
		if err != nil {
			return fmt.Errorf("error computing ranges for %s: %w", file, err)
		}
		if err := encode.Encode(entries, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func spanOpts(comments bool) []span.Option {
	return []span.Option{span.IncludeComments(comments)}
}

func decodeArg(cfg *MainConfig, cc *cli.Context, file string) (ast.Node, error) {
	if file == "-" {
		data, err := readAll(cc)
		if err != nil {
			return nil, err
		}
		return decode.Decode(data, cfg.decodeOpts()...)
	}
	if cfg.InFormat == nil && !cfg.J && !cfg.Y {
		return decode.DecodeFile(file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return decode.Decode(data, cfg.decodeOpts()...)
}

// collect computes one report entry per tree node in source order, filtered
// by the optional match program.
func collect(root ast.Node, matcher *vm.Program, src string, opts []span.Option) ([]encode.Entry, error) {
	var entries []encode.Entry
	depth := 0
	err := ast.Visit(root, func(n ast.Node, isPost bool) (bool, error) {
		if isPost {
			depth--
			return true, nil
		}
		depth++
		r, err := span.Compute(n, opts...)
		if err != nil {
			return false, err
		}
		if matcher != nil {
			ok, err := runMatch(matcher, n, r, depth)
			if err != nil {
				return false, err
			}
			if !ok {
				return true, nil
			}
		}
		e := encode.Entry{Kind: n.Kind().String(), Range: r}
		if src != "" {
			if text, ok := ast.SliceText(src, r); ok {
				e.Text = text
			}
		}
		entries = append(entries, e)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func compileMatch(src string) (*vm.Program, error) {
	if src == "" {
		return nil, nil
	}
	return expr.Compile(src, expr.Env(matchEnv(nil, ast.Range{}, 0)), expr.AsBool())
}

func runMatch(prg *vm.Program, n ast.Node, r ast.Range, depth int) (bool, error) {
	out, err := expr.Run(prg, matchEnv(n, r, depth))
	if err != nil {
		return false, err
	}
	v, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("match expression returned %T, want bool", out)
	}
	return v, nil
}

func matchEnv(n ast.Node, r ast.Range, depth int) map[string]any {
	kind := ""
	if n != nil {
		kind = n.Kind().String()
	}
	return map[string]any{
		"kind":  kind,
		"depth": depth,
		"start": map[string]any{"line": r.Start.Line, "column": r.Start.Column},
		"end":   map[string]any{"line": r.End.Line, "column": r.End.Column},
		"lines": r.End.Line - r.Start.Line + 1,
	}
}
