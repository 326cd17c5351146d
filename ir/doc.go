// Package ir provides the reference node type for treedoc documents.
//
// # Overview
//
// A document is a strict tree of [Node] values. The node graph has no
// sharing and no cycles: every node other than the root has exactly one
// parent, and a composite node owns its children. The IR works as a
// recursive tagged union, where payload fields are populated depending
// on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - BoolType: a true or false leaf, payload in Bool
//   - ArrayType: an ordered list of nodes in Values
//   - ObjectType: ordered (name, value) pairs in Fields and Values
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always the same number of fields as values. Key order is
// significant and preserved exactly as authored. Key uniqueness is not
// enforced: duplicate keys are legal and preserved verbatim on output.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	t := ir.True()
//	arr := ir.FromSlice([]*ir.Node{ir.True(), ir.False()})
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "flag", Val: ir.FromBool(true)},
//	})
//
// Constructors maintain the Parent, ParentIndex and ParentField
// bookkeeping on children, as does Clone.
//
// # Text Rendering
//
// Nodes own their serialization: WriteText renders a node in a
// [format.Style]. Compact output is single-line with ", " separators;
// Pretty output puts every element of a non-empty composite on its own
// line at a 4-space indent unit. An empty composite renders as []/{} in
// both styles. Rendering never mutates the tree and is deterministic,
// so output for equal trees is byte-identical. A reader for the format
// reconstructs a shape-and-content-equal tree from either style's
// output; no reader lives in this module.
//
// # Replacement Palette
//
// Each variant is denoted by a single character code ('t', 'f', 'a',
// 'o'). FromReplaceChar constructs a fresh default value of the variant
// for a code; ReplaceChars lists the accepted codes. Structural editors
// use the palette to retype a node in place; what happens to the old
// node's children is the editor's decision, not this package's.
//
// # JSON Interoperability
//
// The IR is self-describing: ToJSON and FromJSON convert nodes to and
// from a JSON form of the IR structure itself. This is not a parser for
// document text; it exists so the IR can be stored and inspected in
// contexts without treedoc support.
//
// # Thread Safety
//
// Node structures are not thread-safe. Concurrent reads of disjoint
// subtrees need no synchronization; anything else must be synchronized
// by the caller.
//
// # Related Packages
//
//   - github.com/treedoc-format/go-treedoc/ast - capability contract, tree view
//   - github.com/treedoc-format/go-treedoc/encode - host-facing encoding options
package ir
