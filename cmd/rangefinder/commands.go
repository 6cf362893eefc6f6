package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "rangefinder").
		WithSynopsis("rangefinder [opts] command [opts]").
		WithDescription("rangefinder computes exact source spans for parsed syntax trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rfMain(cfg, cc, args)
		}).
		WithSubs(
			RangesCommand(cfg),
			ViewCommand(cfg),
			SliceCommand(cfg),
			CheckCommand(cfg),
			PatchCommand(cfg))
}

func rfMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func RangesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RangesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "match",
			Description: "only report nodes matching an expression over kind/start/end/depth",
			Type:        cli.NamedFuncOpt(matchOptFunc(&cfg.Match), "(expr)"),
		})
	cmd := cli.NewCommand("ranges").
		WithAliases("r", "ra").
		WithSynopsis("ranges [-c] [-src file] [-match expr] [files]").
		WithDescription("compute the source range of every node in tree documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ranges(cfg, cc, args)
		})
	cfg.Ranges = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "match",
			Description: "only annotate nodes matching an expression over kind/start/end/depth",
			Type:        cli.NamedFuncOpt(matchOptFunc(&cfg.Match), "(expr)"),
		})
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-c] [-match expr] <srcfile> [treefiles]").
		WithDescription("print source with node spans marked in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func SliceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SliceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("slice").
		WithAliases("s", "sl").
		WithOpts(opts...).
		WithSynopsis("slice [-c] <path> <srcfile> [treefiles]").
		WithDescription("extract the source text of the node at a tree path like 0.2.1").
		WithRun(func(cc *cli.Context, args []string) error {
			return slice(cfg, cc, args)
		})
	cfg.Slice = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("ck").
		WithOpts(opts...).
		WithSynopsis("check [-c] <srcfile> <treefile> <goldenfile>").
		WithDescription("compare computed slices against a golden report, diffing on mismatch").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "match",
			Description: "only report nodes matching an expression over kind/start/end/depth",
			Type:        cli.NamedFuncOpt(matchOptFunc(&cfg.Match), "(expr)"),
		})
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithOpts(opts...).
		WithSynopsis("patch [-c] [-src file] <patchfile> [treefiles]").
		WithDescription("apply an RFC 6902 patch to tree documents, then compute ranges").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func matchOptFunc(dst *string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		*dst = a
		return a, nil
	})
}
