// This file provides depth-first and breadth-first traversal.
package tree

import "errors"

// WalkMode selects the visiting order of Walk.
type WalkMode int

// Walk orders. Children are always visited in insertion order.
const (
	DepthFirst WalkMode = iota // pre-order
	BreadthFirst
)

// SkipChildren may be returned by a WalkFunc to skip the children of the
// node just visited. Walk itself never returns it.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every visited node. level is the distance from the
// node where the walk started.
type WalkFunc[T any] func(n *Node[T], level int) error

type visit struct {
	id    string
	level int
}

// Walk visits the subtree rooted at identifier. Any error returned by fn,
// other than SkipChildren, stops the walk and is returned.
func (t *Tree[T]) Walk(identifier string, mode WalkMode, fn WalkFunc[T]) error {
	if _, err := t.get(identifier); err != nil {
		return err
	}

	pending := []visit{{id: identifier}}
	for len(pending) > 0 {
		var cur visit
		if mode == BreadthFirst {
			cur, pending = pending[0], pending[1:]
		} else {
			cur, pending = pending[len(pending)-1], pending[:len(pending)-1]
		}

		n := t.nodes[cur.id]
		if err := fn(n, cur.level); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		if mode == BreadthFirst {
			for _, c := range n.children {
				pending = append(pending, visit{id: c, level: cur.level + 1})
			}
			continue
		}
		// Stack: push in reverse so the first child is visited first.
		for i := len(n.children) - 1; i >= 0; i-- {
			pending = append(pending, visit{id: n.children[i], level: cur.level + 1})
		}
	}
	return nil
}

// Leaves returns the nodes without children in the subtree rooted at
// identifier, in depth-first order.
func (t *Tree[T]) Leaves(identifier string) ([]*Node[T], error) {
	var leaves []*Node[T]
	err := t.Walk(identifier, DepthFirst, func(n *Node[T], _ int) error {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leaves, nil
}
