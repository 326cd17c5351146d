package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/treedoc-format/go-treedoc/format"
	"github.com/treedoc-format/go-treedoc/ir"
)

func sampleDoc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "foo", Val: ir.True()},
		{Key: "bar", Val: ir.False()},
	})
}

func TestEncodeDefaultCompact(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sampleDoc(), buf); err != nil {
		t.Fatal(err)
	}
	expected := `{"foo": true, "bar": false}`
	if buf.String() != expected {
		t.Errorf("got %q, want %q", buf.String(), expected)
	}
}

func TestEncodeStyle(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := Encode(sampleDoc(), buf, EncodeStyle(format.Pretty))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n    \"foo\": true,\n") {
		t.Errorf("pretty output missing indented pair: %q", buf.String())
	}
}

func TestStyleFromOpts(t *testing.T) {
	if s := StyleFromOpts(); s != format.Compact {
		t.Errorf("default style = %v", s)
	}
	if s := StyleFromOpts(EncodeStyle(format.Pretty)); s != format.Pretty {
		t.Errorf("style = %v", s)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString(ir.True()); got != "true" {
		t.Errorf("MustString = %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	buf := bytes.NewBuffer(nil)
	err := Encode(sampleDoc(), buf, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("colored output has no escapes: %q", out)
	}
	for _, payload := range []string{`"foo"`, "true", `"bar"`, "false"} {
		if !strings.Contains(out, payload) {
			t.Errorf("colored output lost %q: %q", payload, out)
		}
	}
}

func TestColorsFallback(t *testing.T) {
	c := NewColors()
	if got := c.Color(ir.BoolType, ir.FieldColor, "x"); got != "x" {
		t.Errorf("unmapped colorable should pass through, got %q", got)
	}
}
