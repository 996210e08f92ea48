// Package htmlnode implements the HTML node tree produced by the markdown
// engine and its serialization to HTML text.
//
// A Node is either a leaf, which carries text and no children, or a parent,
// which carries a tag and an ordered list of owned children. Both shapes share
// one struct and one Render entry point.
package htmlnode

import (
	"errors"
	"fmt"
)

// ErrStructuralInvariant indicates a node tree that violates the render
// contract: a parent without tag or children, or an unknown node kind.
// It signals a builder bug, not bad input.
var ErrStructuralInvariant = errors.New("structural invariant violated")

// Kind selects the shape of a Node.
type Kind int

// Node shapes.
const (
	KindLeaf Kind = iota + 1
	KindParent
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindParent:
		return "parent"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered attribute list. Render order is insertion order.
type Attrs []Attr

// Get returns the value of the first attribute with the given name.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Node is an HTML element or a run of raw text.
//
// Leaf nodes use Tag, Value and Attrs. An empty Tag renders Value as raw text.
// Parent nodes use Tag and Children; their Attrs are kept but never rendered.
type Node struct {
	Kind     Kind
	Tag      string
	Value    string
	Children []*Node
	Attrs    Attrs
}

// NewLeaf creates a leaf element with text content.
func NewLeaf(tag, value string, attrs ...Attr) *Node {
	return &Node{Kind: KindLeaf, Tag: tag, Value: value, Attrs: attrs}
}

// NewText creates an untagged leaf rendered as raw text.
func NewText(value string) *Node {
	return &Node{Kind: KindLeaf, Value: value}
}

// NewEmptyLeaf creates a leaf element without text, such as an image.
func NewEmptyLeaf(tag string, attrs ...Attr) *Node {
	return &Node{Kind: KindLeaf, Tag: tag, Attrs: attrs}
}

// NewParent creates an element that owns children.
// The children slice is owned by the returned node afterwards.
func NewParent(tag string, children []*Node, attrs ...Attr) *Node {
	return &Node{Kind: KindParent, Tag: tag, Children: children, Attrs: attrs}
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool { return n.Kind == KindLeaf }

// IsParent reports whether n is a parent node.
func (n *Node) IsParent() bool { return n.Kind == KindParent }
