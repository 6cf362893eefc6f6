package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/exfmt/rangefinder/decode"
	"github.com/exfmt/rangefinder/encode"
)

// patch applies an RFC 6902 patch to serialized tree documents before
// computing ranges. Tree documents travel as JSON in pipelines; patching the
// document (fixing a position a parser got wrong, dropping a subtree) and
// re-reporting in one step avoids a round trip through files.
func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not open %q: %w", args[0], err)
	}
	ops, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return fmt.Errorf("bad patch %s: %w", args[0], err)
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
	treeFiles := args[1:]
	if len(treeFiles) == 0 {
		treeFiles = []string{"-"}
	}
	for _, file := range treeFiles {
		var data []byte
		if file == "-" {
			data, err = readAll(cc)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return err
		}
		patched, err := ops.Apply(data)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		node, err := decode.Decode(patched, decode.DecodeJSON())
		if err != nil {
			return fmt.Errorf("error decoding patched %s: %w", file, err)
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
