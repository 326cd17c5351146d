package main

import (
	"fmt"
	"io"
	"os"

	"github.com/treedoc-format/go-treedoc/encode"
	"github.com/treedoc-format/go-treedoc/format"
	"github.com/treedoc-format/go-treedoc/ir"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	W     bool `cli:"name=w aliases=wire desc='output in compact style'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) style() format.Style {
	if cfg.W {
		return format.Compact
	}
	return format.Pretty
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeStyle(cfg.style()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
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

// loadArg reads an IR JSON file, or stdin for "-".
func loadArg(arg string) (*ir.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	node, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type ViewConfig struct {
	*MainConfig

	Tree bool `cli:"name=t aliases=tree desc='show structure instead of text'"`
	View *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Y bool `cli:"name=y aliases=yaml desc='dump IR as yaml'"`

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PaletteConfig struct {
	*MainConfig

	Palette *cli.Command
}
