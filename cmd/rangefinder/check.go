package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/exfmt/rangefinder/encode"
)

// check recomputes every node's slice of the source and compares the report
// against a golden file, so a tree/source pair can guard against layout
// regressions in the producing parser.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: check requires <srcfile> <treefile> <goldenfile>", cli.ErrUsage)
	}
	srcData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not open %q: %w", args[0], err)
	}
	node, err := decodeArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	golden, err := os.ReadFile(args[2])
	if err != nil {
		return fmt.Errorf("could not open %q: %w", args[2], err)
	}
	entries, err := collect(node, nil, string(srcData), spanOpts(cfg.Comments))
	if err != nil {
		return fmt.Errorf("error computing ranges for %s: %w", args[1], err)
	}
	got := checkReport(entries)
	if got == string(golden) {
		fmt.Fprintf(cc.Out, "ok: %d nodes\n", len(entries))
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(golden), got, false)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return fmt.Errorf("%s does not match %s", args[1], args[2])
}

func checkReport(entries []encode.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s %s\n", e.Kind, e.Range, quoteMultiline(e.Text))
	}
	return b.String()
}

func quoteMultiline(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}
