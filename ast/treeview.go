package ast

import (
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// TreeView renders the structure of t as a box-drawing tree, one line
// per node: the root's display name with no prefix, then each descendant
// prefixed with "├── " or "└── " under "│   "/"    " ancestor columns.
// The output has no trailing newline, so it always has exactly
// 1 + descendant-count lines.
func TreeView(t Tree) string {
	p := treeprint.NewWithRoot(t.DisplayName())
	for _, ch := range t.Children() {
		addTreeView(p, ch)
	}
	return strings.TrimSuffix(p.String(), "\n")
}

// WriteTreeView writes TreeView(t) to w.
func WriteTreeView(w io.Writer, t Tree) error {
	_, err := io.WriteString(w, TreeView(t))
	return err
}

func addTreeView(p treeprint.Tree, t Tree) {
	children := t.Children()
	if len(children) == 0 {
		p.AddNode(t.DisplayName())
		return
	}
	branch := p.AddBranch(t.DisplayName())
	for _, ch := range children {
		addTreeView(branch, ch)
	}
}
