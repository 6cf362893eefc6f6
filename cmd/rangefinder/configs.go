package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/exfmt/rangefinder/decode"
	"github.com/exfmt/rangefinder/encode"
	"github.com/exfmt/rangefinder/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='annotate with color'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) decodeOpts() []decode.Option {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	return []decode.Option{decode.DecodeFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type RangesConfig struct {
	*MainConfig

	Comments bool   `cli:"name=c desc='include leading comments in ranges'"`
	Src      string `cli:"name=src desc='source file; include each range text in the report'"`
	Match    string

	Ranges *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='include leading comments in ranges'"`
	Match    string

	View *cli.Command
}

type SliceConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='include leading comments in ranges'"`

	Slice *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Comments bool `cli:"name=c desc='include leading comments in ranges'"`

	Check *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Comments bool   `cli:"name=c desc='include leading comments in ranges'"`
	Src      string `cli:"name=src desc='source file; include each range text in the report'"`
	Match    string

	Patch *cli.Command
}
