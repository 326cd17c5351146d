package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "treedoc").
		WithSynopsis("treedoc [opts] command [opts]").
		WithDescription("treedoc is a tool for inspecting treedoc IR files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treedocMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			TreeCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg),
			PaletteCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [ir-files]").
		WithDescription("render documents as text, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tree").
		WithAliases("t").
		WithSynopsis("tree [ir-files]").
		WithDescription("show document structure as a tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-y] [ir-files]").
		WithDescription("dump IR structure as JSON or YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <ir-file> <ir-file>").
		WithDescription("show a text diff of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PaletteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PaletteConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Palette, "palette").
		WithSynopsis("palette").
		WithDescription("list replacement palette codes").
		WithRun(func(cc *cli.Context, args []string) error {
			return palette(cfg, cc, args)
		})
}
