package ast

import (
	"io"
	"strings"

	"github.com/treedoc-format/go-treedoc/format"
)

// Tree is the capability contract for tree-shaped document nodes.
type Tree interface {
	// WriteText writes the node's text rendering in the given style.
	// It is a pure function of (node, style): total over well-formed
	// nodes, deterministic, and safe to call concurrently on
	// structurally distinct subtrees. The only errors are those
	// returned by w.
	WriteText(w io.Writer, style format.Style) error

	// Children returns the node's ordered children, empty for leaves.
	// Every call returns the same sequence in the same order, and the
	// order matches the order WriteText visits children.
	Children() []Tree

	// DisplayName returns a short, stable, human-readable label for
	// this node's shape (not its contents), e.g. "array".
	DisplayName() string

	// ReplaceChars returns the fixed set of single-character codes
	// this type accepts for a structural retype. Codes are pairwise
	// distinct within a type.
	ReplaceChars() []rune

	// FromReplaceChar constructs a fresh default-valued node of the
	// variant denoted by c, or returns (nil, false) when c is not in
	// this type's palette. Callers treat a miss as a no-op.
	FromReplaceChar(c rune) (Tree, bool)
}

// Text renders t in the given style. It never fails: Tree.WriteText only
// errors on writer failure and strings.Builder writes cannot fail.
func Text(t Tree, style format.Style) string {
	sb := &strings.Builder{}
	if err := t.WriteText(sb, style); err != nil {
		panic(err)
	}
	return sb.String()
}
