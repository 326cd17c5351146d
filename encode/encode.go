package encode

import (
	"io"

	"github.com/treedoc-format/go-treedoc/format"
	"github.com/treedoc-format/go-treedoc/ir"
)

type EncState struct {
	style format.Style
	Color ir.ColorFunc
}

// Encode writes node to w. The default style is Compact.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return node.EncodeText(w, es.style, es.Color)
}
