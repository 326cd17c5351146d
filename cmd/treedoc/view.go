package main

import (
	"io"

	"github.com/treedoc-format/go-treedoc/ast"
	"github.com/treedoc-format/go-treedoc/debug"
	"github.com/treedoc-format/go-treedoc/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		node, err := loadArg(arg)
		if err != nil {
			return err
		}
		if debug.View() {
			debug.Logf("view %s at %s\n", arg, node.Path())
		}
		if cfg.Tree {
			if err := ast.WriteTreeView(cc.Out, node); err != nil {
				return err
			}
		} else if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := io.WriteString(cc.Out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
