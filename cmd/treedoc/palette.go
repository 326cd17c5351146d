package main

import (
	"fmt"

	"github.com/treedoc-format/go-treedoc/encode"
	"github.com/treedoc-format/go-treedoc/ir"

	"github.com/scott-cotton/cli"
)

func palette(cfg *PaletteConfig, cc *cli.Context, args []string) error {
	for _, c := range ir.ReplaceChars() {
		node, ok := ir.FromReplaceChar(c)
		if !ok {
			panic("palette code not accepted by its own type")
		}
		_, err := fmt.Fprintf(cc.Out, "%c  %-6s  %s\n",
			c, node.DisplayName(), encode.MustString(node))
		if err != nil {
			return err
		}
	}
	return nil
}
