package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/exfmt/rangefinder/ast"
	"github.com/exfmt/rangefinder/span"
)

func slice(cfg *SliceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Slice.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: slice requires a tree path and a source file", cli.ErrUsage)
	}
	path := args[0]
	d, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("could not open %q: %w", args[1], err)
	}
	src := string(d)
	treeFiles := args[2:]
	if len(treeFiles) == 0 {
		treeFiles = []string{"-"}
	}
	for _, file := range treeFiles {
		node, err := decodeArg(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		target, err := resolvePath(node, path)
		if err != nil {
			return err
		}
		r, err := span.Compute(target, spanOpts(cfg.Comments)...)
		if err != nil {
			return err
		}
		text, ok := ast.SliceText(src, r)
		if !ok {
			return fmt.Errorf("range %s of %s node reaches outside %s", r, target.Kind(), args[1])
		}
		fmt.Fprintln(cc.Out, text)
	}
	return nil
}

// resolvePath walks child indexes separated by dots; "." names the root.
func resolvePath(n ast.Node, path string) (ast.Node, error) {
	if path == "." || path == "" {
		return n, nil
	}
	cur := n
	for _, part := range strings.Split(path, ".") {
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: bad tree path element %q", cli.ErrUsage, part)
		}
		kids := ast.Children(cur)
		if i < 0 || i >= len(kids) {
			return nil, fmt.Errorf("tree path element %d out of range: %s node has %d children",
				i, cur.Kind(), len(kids))
		}
		cur = kids[i]
	}
	return cur, nil
}
