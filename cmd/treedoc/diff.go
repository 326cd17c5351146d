package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/treedoc-format/go-treedoc/debug"
	"github.com/treedoc-format/go-treedoc/format"
	"github.com/treedoc-format/go-treedoc/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := loadArg(args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(args[1])
	if err != nil {
		return err
	}
	if debug.Diff() {
		debug.Logf("diff %v %v\n", from, to)
	}
	if ir.Equal(from, to) {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from.Text(format.Pretty), to.Text(format.Pretty), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	out := plainDiff(diffs)
	if cfg.Color {
		out = dmp.DiffPrettyText(diffs)
	}
	_, err = io.WriteString(cc.Out, out+"\n")
	return err
}

func plainDiff(diffs []diffmatchpatch.Diff) string {
	sb := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
