// This file defines Node and its read-only accessors.
package tree

import "slices"

// Node is a single entry of a Tree. Its fields are only set by the owning
// tree; callers read them through the accessor methods.
type Node[T any] struct {
	identifier string
	tag        string
	value      T
	parent     string   // empty for the root
	children   []string // insertion order
}

// Identifier returns the node's unique identifier.
func (n *Node[T]) Identifier() string { return n.identifier }

// Tag returns the node's display label.
func (n *Node[T]) Tag() string { return n.tag }

// Value returns the node's payload.
func (n *Node[T]) Value() T { return n.value }

// Parent returns the parent's identifier and false for the root.
func (n *Node[T]) Parent() (string, bool) {
	return n.parent, n.parent != ""
}

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool { return n.parent == "" }

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool { return len(n.children) == 0 }

// Children returns a copy of the child identifiers in insertion order.
func (n *Node[T]) Children() []string {
	return slices.Clone(n.children)
}
