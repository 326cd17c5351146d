package ir

import (
	"strconv"
	"strings"
)

// Path returns a JSONPath-style path from the root to this node, e.g.
// "$.foo[0]". Hosts use it for status displays; it is not an addressing
// scheme (duplicate keys make object paths ambiguous on lookup).
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		f := y.ParentField
		prefix := y.Parent.Path() + "."
		if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}
