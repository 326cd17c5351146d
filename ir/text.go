package ir

import (
	"io"
	"strconv"
	"strings"

	"github.com/treedoc-format/go-treedoc/format"
)

// ColorAttr distinguishes the parts of a node's text rendering that a
// ColorFunc may style independently.
type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// ColorFunc styles one fragment of output. A nil ColorFunc yields plain
// output; the styled result must contain s verbatim so that layout is
// unchanged.
type ColorFunc func(t Type, attr ColorAttr, s string) string

// indentUnit is one level of Pretty indentation.
const indentUnit = "    "

type encState struct {
	indent []byte
	color  ColorFunc
}

func (es *encState) colorize(t Type, attr ColorAttr, s string) string {
	if es.color == nil {
		return s
	}
	return es.color(t, attr, s)
}

// WriteText writes the node's text rendering in the given style. The
// only errors are those returned by w.
func (y *Node) WriteText(w io.Writer, style format.Style) error {
	return y.EncodeText(w, style, nil)
}

// Text renders the node in the given style.
func (y *Node) Text(style format.Style) string {
	sb := &strings.Builder{}
	es := &encState{}
	y.writeText(sb, style, es)
	return sb.String()
}

// EncodeText is WriteText with a color hook for terminal display.
func (y *Node) EncodeText(w io.Writer, style format.Style, color ColorFunc) error {
	sb := &strings.Builder{}
	es := &encState{color: color}
	y.writeText(sb, style, es)
	_, err := io.WriteString(w, sb.String())
	return err
}

func (y *Node) writeText(sb *strings.Builder, style format.Style, es *encState) {
	switch style {
	case format.Compact:
		y.writeTextCompact(sb, es)
	case format.Pretty:
		y.writeTextPretty(sb, es)
	default:
		panic("style")
	}
}

func (y *Node) writeTextCompact(sb *strings.Builder, es *encState) {
	switch y.Type {
	case BoolType:
		sb.WriteString(es.colorize(BoolType, ValueColor, strconv.FormatBool(y.Bool)))
	case ArrayType:
		sb.WriteString(es.colorize(ArrayType, SepColor, "["))
		for i, v := range y.Values {
			if i > 0 {
				sb.WriteString(es.colorize(ArrayType, SepColor, ", "))
			}
			v.writeTextCompact(sb, es)
		}
		sb.WriteString(es.colorize(ArrayType, SepColor, "]"))
	case ObjectType:
		sb.WriteString(es.colorize(ObjectType, SepColor, "{"))
		for i, v := range y.Values {
			if i > 0 {
				sb.WriteString(es.colorize(ObjectType, SepColor, ", "))
			}
			writeField(sb, y.Fields[i], es)
			v.writeTextCompact(sb, es)
		}
		sb.WriteString(es.colorize(ObjectType, SepColor, "}"))
	default:
		panic("type")
	}
}

// writeTextPretty threads the indentation buffer in es. The buffer is
// pushed before a non-empty composite's children and popped after them,
// so it is exactly restored whatever the nesting depth.
func (y *Node) writeTextPretty(sb *strings.Builder, es *encState) {
	switch y.Type {
	case BoolType:
		y.writeTextCompact(sb, es)
	case ArrayType:
		sb.WriteString(es.colorize(ArrayType, SepColor, "["))
		if len(y.Values) != 0 {
			sb.WriteByte('\n')
			es.indent = append(es.indent, indentUnit...)
			for i, v := range y.Values {
				if i > 0 {
					sb.WriteString(es.colorize(ArrayType, SepColor, ","))
					sb.WriteByte('\n')
				}
				sb.Write(es.indent)
				v.writeTextPretty(sb, es)
			}
			es.indent = es.indent[:len(es.indent)-len(indentUnit)]
			sb.WriteByte('\n')
			sb.Write(es.indent)
		}
		sb.WriteString(es.colorize(ArrayType, SepColor, "]"))
	case ObjectType:
		sb.WriteString(es.colorize(ObjectType, SepColor, "{"))
		if len(y.Values) != 0 {
			sb.WriteByte('\n')
			es.indent = append(es.indent, indentUnit...)
			for i, v := range y.Values {
				if i > 0 {
					sb.WriteString(es.colorize(ObjectType, SepColor, ","))
					sb.WriteByte('\n')
				}
				sb.Write(es.indent)
				writeField(sb, y.Fields[i], es)
				v.writeTextPretty(sb, es)
			}
			es.indent = es.indent[:len(es.indent)-len(indentUnit)]
			sb.WriteByte('\n')
			sb.Write(es.indent)
		}
		sb.WriteString(es.colorize(ObjectType, SepColor, "}"))
	default:
		panic("type")
	}
}

func writeField(sb *strings.Builder, f string, es *encState) {
	sb.WriteString(es.colorize(ObjectType, FieldColor, `"`+f+`"`))
	sb.WriteString(es.colorize(ObjectType, SepColor, ": "))
}
