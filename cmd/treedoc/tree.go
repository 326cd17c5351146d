package main

import (
	"io"

	"github.com/treedoc-format/go-treedoc/ast"

	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	for _, arg := range orStdin(args) {
		node, err := loadArg(arg)
		if err != nil {
			return err
		}
		if err := ast.WriteTreeView(cc.Out, node); err != nil {
			return err
		}
		if _, err := io.WriteString(cc.Out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
