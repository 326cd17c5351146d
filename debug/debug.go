package debug

import (
	"os"
	"strconv"
)

type debug struct {
	View bool
	Diff bool
	Dump bool
}

var d *debug

func init() {
	d = &debug{}
	d.View = boolEnv("TREEDOC_DEBUG_VIEW")
	d.Diff = boolEnv("TREEDOC_DEBUG_DIFF")
	d.Dump = boolEnv("TREEDOC_DEBUG_DUMP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func View() bool {
	return d.View
}
func Diff() bool {
	return d.Diff
}
func Dump() bool {
	return d.Dump
}
