package ir

import "strings"

var typeRank = map[Type]int{
	BoolType:   0,
	ArrayType:  1,
	ObjectType: 2,
}

// Compare defines a total order over nodes: Bool < Array < Object, then
// false < true for bools, and element-wise with shorter-first for
// composites. Object fields compare before their values.
func Compare(a, b *Node) int {
	if d := typeRank[a.Type] - typeRank[b.Type]; d != 0 {
		return sign(d)
	}
	switch a.Type {
	case BoolType:
		return compareBool(a.Bool, b.Bool)
	case ArrayType:
		return compareValues(a, b)
	case ObjectType:
		n := min(len(a.Fields), len(b.Fields))
		for i := range n {
			if d := strings.Compare(a.Fields[i], b.Fields[i]); d != 0 {
				return d
			}
			if d := Compare(a.Values[i], b.Values[i]); d != 0 {
				return d
			}
		}
		return sign(len(a.Fields) - len(b.Fields))
	default:
		panic("type")
	}
}

// Equal reports shape-and-content equality.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareValues(a, b *Node) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return sign(len(a.Values) - len(b.Values))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	default:
		return 1
	}
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
