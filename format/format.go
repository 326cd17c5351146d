package format

import (
	"errors"
	"fmt"
)

// Style selects how a document is laid out when rendered to text. The
// grammar of the output is the same for every style, only whitespace
// differs.
type Style int

const (
	// Compact is the minimal-whitespace single-line representation,
	// e.g. `[{"foo": true}, false]`.
	Compact Style = iota
	// Pretty is the indented multi-line representation with a 4-space
	// indent unit and every element on its own line.
	Pretty
)

var ErrBadStyle = errors.New("bad style")

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"c":       Compact,
		"compact": Compact,
		"p":       Pretty,
		"pretty":  Pretty,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

func (s Style) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case Compact:
		return []byte("compact"), nil
	case Pretty:
		return []byte("pretty"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a style>", s)
	}
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

func (s Style) IsCompact() bool { return s == Compact }
func (s Style) IsPretty() bool  { return s == Pretty }

func Styles() []Style {
	return []Style{Compact, Pretty}
}
