package ir

import (
	"github.com/treedoc-format/go-treedoc/ast"
)

var _ ast.Tree = (*Node)(nil)

// Children returns the node's ordered children as a fresh slice. The
// order matches serialization order, which keeps tree-view positions
// aligned with edit targets.
func (y *Node) Children() []ast.Tree {
	if len(y.Values) == 0 {
		return nil
	}
	res := make([]ast.Tree, len(y.Values))
	for i, v := range y.Values {
		res[i] = v
	}
	return res
}

// DisplayName labels the node's shape: "true", "false", "array" or
// "object".
func (y *Node) DisplayName() string {
	switch y.Type {
	case BoolType:
		if y.Bool {
			return "true"
		}
		return "false"
	case ArrayType:
		return "array"
	case ObjectType:
		return "object"
	default:
		panic("type")
	}
}

func (y *Node) ReplaceChars() []rune {
	return ReplaceChars()
}

func (y *Node) FromReplaceChar(c rune) (ast.Tree, bool) {
	node, ok := FromReplaceChar(c)
	if !ok {
		return nil, false
	}
	return node, true
}
