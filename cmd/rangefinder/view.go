package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/exfmt/rangefinder/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires a source file", cli.ErrUsage)
	}
	srcFile := args[0]
	d, err := os.ReadFile(srcFile)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", srcFile, err)
	}
	src := string(d)
	matcher, err := compileMatch(cfg.Match)
	if err != nil {
		return err
	}
	treeFiles := args[1:]
	if len(treeFiles) == 0 {
		treeFiles = []string{"-"}
	}
	for i, file := range treeFiles {
		node, err := decodeArg(cfg.MainConfig, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		entries, err := collect(node, matcher, "", spanOpts(cfg.Comments))
		if err != nil {
			return fmt.Errorf("error computing ranges for %s: %w", file, err)
		}
		if err := encode.Annotate(cc.Out, src, entries, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if i < len(treeFiles)-1 {
			cc.Out.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func readAll(cc *cli.Context) ([]byte, error) {
	return io.ReadAll(cc.In)
}
