// This file implements node creation and lookup on the arena.
// Implements: create root, create child, find, children, parent, level,
// depth, ancestors, distance.
package tree

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Tree is a rooted tree of labelled nodes carrying values of type T.
type Tree[T any] struct {
	root  string
	nodes map[string]*Node[T]
}

// New returns an empty tree with no root.
func New[T any]() *Tree[T] {
	return &Tree[T]{nodes: make(map[string]*Node[T])}
}

// CreateRoot creates the root node. The root is set once and never changes.
// Returns ErrInvalidIdentifier if identifier is blank and ErrAlreadyRooted if
// the tree already has a root.
func (t *Tree[T]) CreateRoot(tag, identifier string, value T) (*Node[T], error) {
	if !validIdentifier(identifier) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, identifier)
	}
	if t.root != "" {
		return nil, fmt.Errorf("%w: root is %q", ErrAlreadyRooted, t.root)
	}

	n := &Node[T]{identifier: identifier, tag: tag, value: value}
	t.nodes[identifier] = n
	t.root = identifier
	return n, nil
}

// CreateChild creates a node under parentIdentifier and appends it to the
// parent's children. Returns ErrInvalidIdentifier if identifier is blank,
// ErrDuplicateIdentifier if it is already used and ErrParentNotFound if the
// parent does not exist. The tree is unchanged on error.
func (t *Tree[T]) CreateChild(tag, identifier, parentIdentifier string, value T) (*Node[T], error) {
	if !validIdentifier(identifier) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, identifier)
	}
	if _, ok := t.nodes[identifier]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, identifier)
	}
	parent, ok := t.nodes[parentIdentifier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParentNotFound, parentIdentifier)
	}

	n := &Node[T]{identifier: identifier, tag: tag, value: value, parent: parentIdentifier}
	parent.children = append(parent.children, identifier)
	t.nodes[identifier] = n
	return n, nil
}

// Find returns the node with the given identifier. Absence is not an error.
func (t *Tree[T]) Find(identifier string) (*Node[T], bool) {
	n, ok := t.nodes[identifier]
	return n, ok
}

// ChildrenOf returns the direct children of a node in insertion order.
func (t *Tree[T]) ChildrenOf(identifier string) ([]*Node[T], error) {
	n, err := t.get(identifier)
	if err != nil {
		return nil, err
	}
	return lo.Map(n.children, func(id string, _ int) *Node[T] {
		return t.nodes[id]
	}), nil
}

// ParentOf returns the parent of a node. The boolean is false for the root.
func (t *Tree[T]) ParentOf(identifier string) (*Node[T], bool, error) {
	n, err := t.get(identifier)
	if err != nil {
		return nil, false, err
	}
	if n.parent == "" {
		return nil, false, nil
	}
	return t.nodes[n.parent], true, nil
}

// Root returns the root node, or false if the tree is empty.
func (t *Tree[T]) Root() (*Node[T], bool) {
	if t.root == "" {
		return nil, false
	}
	return t.nodes[t.root], true
}

// Len returns the number of nodes.
func (t *Tree[T]) Len() int { return len(t.nodes) }

// Contains reports whether a node with the identifier exists.
func (t *Tree[T]) Contains(identifier string) bool {
	_, ok := t.nodes[identifier]
	return ok
}

// Level returns the number of parent links between the node and the root.
func (t *Tree[T]) Level(identifier string) (int, error) {
	n, err := t.get(identifier)
	if err != nil {
		return 0, err
	}
	level := 0
	for n.parent != "" {
		n = t.nodes[n.parent]
		level++
	}
	return level, nil
}

// Depth returns the greatest level of any node. An empty tree has depth 0.
func (t *Tree[T]) Depth() int {
	depth := 0
	if t.root == "" {
		return depth
	}
	_ = t.Walk(t.root, BreadthFirst, func(_ *Node[T], level int) error {
		depth = max(depth, level)
		return nil
	})
	return depth
}

// Ancestors returns the node followed by each ancestor up to and including
// the root.
func (t *Tree[T]) Ancestors(identifier string) ([]*Node[T], error) {
	n, err := t.get(identifier)
	if err != nil {
		return nil, err
	}
	chain := []*Node[T]{n}
	for n.parent != "" {
		n = t.nodes[n.parent]
		chain = append(chain, n)
	}
	return chain, nil
}

// Distance returns how many levels below baseIdentifier the node lies.
// Returns ErrNotDescendant if the node is outside the base node's subtree.
func (t *Tree[T]) Distance(identifier, baseIdentifier string) (int, error) {
	if _, err := t.get(baseIdentifier); err != nil {
		return 0, err
	}
	chain, err := t.Ancestors(identifier)
	if err != nil {
		return 0, err
	}
	_, idx, ok := lo.FindIndexOf(chain, func(n *Node[T]) bool {
		return n.identifier == baseIdentifier
	})
	if !ok {
		return 0, fmt.Errorf("%w: %q under %q", ErrNotDescendant, identifier, baseIdentifier)
	}
	return idx, nil
}

func (t *Tree[T]) get(identifier string) (*Node[T], error) {
	n, ok := t.nodes[identifier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, identifier)
	}
	return n, nil
}

// validIdentifier rejects empty and whitespace-only identifiers.
func validIdentifier(identifier string) bool {
	return strings.TrimSpace(identifier) != ""
}
