package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Bool < Array < Object
		{"Bool < Array", FromBool(true), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},
		{"Bool < Object", FromBool(false), FromKeyVals(nil), -1},

		// Bool Comparison
		{"false < true", False(), True(), -1},
		{"true > false", True(), False(), 1},
		{"true == true", True(), True(), 0},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array",
			FromSlice([]*Node{True()}),
			FromSlice([]*Node{True(), False()}), -1},
		{"Array Element Comparison",
			FromSlice([]*Node{False()}),
			FromSlice([]*Node{True()}), -1},

		// Object Comparison
		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Short Object < Long Object",
			FromKeyVals([]KeyVal{{"a", True()}}),
			FromKeyVals([]KeyVal{{"a", True()}, {"b", False()}}), -1},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{{"a", True()}}),
			FromKeyVals([]KeyVal{{"b", True()}}), -1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{{"a", False()}}),
			FromKeyVals([]KeyVal{{"a", True()}}), -1},
		{"Duplicate Keys Ordered",
			FromKeyVals([]KeyVal{{"a", True()}, {"a", False()}}),
			FromKeyVals([]KeyVal{{"a", True()}, {"a", True()}}), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("reverse Compare = %d, want %d", got, -tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal(nestedDoc(), nestedDoc()) {
		t.Error("equal trees reported unequal")
	}
	if Equal(nestedDoc(), True()) {
		t.Error("unequal trees reported equal")
	}
}
