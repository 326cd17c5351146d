package main

import (
	"fmt"

	"github.com/treedoc-format/go-treedoc/debug"
	"github.com/treedoc-format/go-treedoc/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range orStdin(args) {
		node, err := loadArg(arg)
		if err != nil {
			return err
		}
		if debug.Dump() {
			debug.Logf("dump %s: %v\n", arg, node)
		}
		var d []byte
		if cfg.Y {
			d, err = yaml.MarshalWithOptions(node, yaml.UseJSONMarshaler())
		} else {
			d, err = ir.ToJSON(node)
		}
		if err != nil {
			return fmt.Errorf("error dumping %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}
