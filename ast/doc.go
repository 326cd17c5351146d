// Package ast defines the capability contract that tree-shaped document
// types satisfy to be rendered by this module, along with the generic
// services built only against that contract.
//
// # The Tree contract
//
// A document node type implements [Tree] by exposing:
//
//   - WriteText: deterministic text serialization in a given style
//   - Children: the ordered child sequence (empty for leaves)
//   - DisplayName: a short, stable label for the node's shape
//   - ReplaceChars / FromReplaceChar: the replacement palette used by
//     structural editors to retype a node in place
//
// Children must return the same sequence on every call, in the same order
// the serializer visits children. Hosts rely on that correspondence to
// map a visual position in the tree view back to an edit target.
//
// # Generic services
//
// [TreeView] and [WriteTreeView] produce a box-drawing debug view of any
// conforming type, one line per node, without knowing the concrete type.
// A future document format gets a correct tree view for free by
// implementing Tree.
//
// # Purity
//
// Nothing in this package mutates a tree. All operations read nodes
// through the contract and return freshly constructed strings or values.
// Callers must not mutate a subtree while a call is traversing it; no
// internal locking is provided or needed.
//
// # Related packages
//
//   - github.com/treedoc-format/go-treedoc/ir - the reference node type
//   - github.com/treedoc-format/go-treedoc/format - serialization styles
package ast
