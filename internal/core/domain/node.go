package domain

import "maps"

// Node is one element of a parsed stylesheet tree.
// The cache treats it as opaque and only moves it through the tree codec.
type Node struct {
	Kind     string
	Value    string
	Line     int
	Attrs    map[string]string
	Children []*Node
}

// NewNode creates a node of the given kind.
func NewNode(kind, value string, line int, children ...*Node) *Node {
	return &Node{
		Kind:     kind,
		Value:    value,
		Line:     line,
		Children: children,
	}
}

// SetAttr sets an attribute on the node, allocating the map on first use.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Append adds children to the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Equal reports whether two trees have the same structure and content.
// A nil Attrs map and an empty one are considered equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Value != other.Value || n.Line != other.Line {
		return false
	}
	if !maps.Equal(n.Attrs, other.Attrs) {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i, child := range n.Children {
		if !child.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Walk visits the node and its descendants depth-first, stopping when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}
