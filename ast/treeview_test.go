package ast

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treedoc-format/go-treedoc/format"
)

// stubNode is a minimal Tree implementation used to check that the
// renderer works for any conforming type, not just the reference one.
type stubNode struct {
	name     string
	children []*stubNode
}

func stub(name string, children ...*stubNode) *stubNode {
	return &stubNode{name: name, children: children}
}

func (s *stubNode) WriteText(w io.Writer, style format.Style) error {
	_, err := io.WriteString(w, s.name)
	return err
}

func (s *stubNode) Children() []Tree {
	res := make([]Tree, len(s.children))
	for i, ch := range s.children {
		res[i] = ch
	}
	return res
}

func (s *stubNode) DisplayName() string { return s.name }

func (s *stubNode) ReplaceChars() []rune { return []rune{'s'} }

func (s *stubNode) FromReplaceChar(c rune) (Tree, bool) {
	if c != 's' {
		return nil, false
	}
	return stub("s"), true
}

func TestTreeViewStub(t *testing.T) {
	tests := []struct {
		name     string
		node     *stubNode
		expected string
	}{
		{"leaf", stub("leaf"), "leaf"},
		{"single child", stub("root", stub("only")),
			`root
└── only`},
		{"mixed depths",
			stub("root",
				stub("a",
					stub("a1"),
					stub("a2",
						stub("a2x"))),
				stub("b",
					stub("b1"))),
			`root
├── a
│   ├── a1
│   └── a2
│       └── a2x
└── b
    └── b1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TreeView(tt.node)
			if d := cmp.Diff(tt.expected, got); d != "" {
				t.Errorf("tree view (-want +got):\n%s", d)
			}
		})
	}
}

func TestWriteTreeView(t *testing.T) {
	sb := &strings.Builder{}
	node := stub("root", stub("kid"))
	if err := WriteTreeView(sb, node); err != nil {
		t.Fatal(err)
	}
	if sb.String() != TreeView(node) {
		t.Errorf("WriteTreeView and TreeView disagree: %q", sb.String())
	}
}

func TestText(t *testing.T) {
	if got := Text(stub("leaf"), format.Compact); got != "leaf" {
		t.Errorf("Text = %q", got)
	}
}
