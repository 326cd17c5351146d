package encode

import "github.com/treedoc-format/go-treedoc/format"

type EncodeOption func(*EncState)

func EncodeStyle(s format.Style) EncodeOption {
	return func(es *EncState) { es.style = s }
}

// StyleFromOpts extracts the style from encode options.
func StyleFromOpts(opts ...EncodeOption) format.Style {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.style
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
