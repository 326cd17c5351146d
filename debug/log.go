package debug

import (
	"fmt"
	"os"

	"github.com/treedoc-format/go-treedoc/encode"
	"github.com/treedoc-format/go-treedoc/ir"
)

// Logf prints to stderr, rendering *ir.Node arguments as compact
// document text first.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			args[i] = encode.MustString(x)
		case bool, string, int:

		default:
			args[i] = fmt.Sprintf("%v", a)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
