// This file provides operations that build a new, independent tree from an
// existing one. Values are copied by assignment.
package tree

// Subtree returns a new tree rooted at identifier holding copies of that node
// and all its descendants.
func (t *Tree[T]) Subtree(identifier string) (*Tree[T], error) {
	out := New[T]()
	err := t.Walk(identifier, DepthFirst, func(n *Node[T], _ int) error {
		out.insert(n, n.identifier == identifier)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Prune returns a copy of the tree without the nodes deeper than maxDepth.
// A negative maxDepth yields an empty tree.
func (t *Tree[T]) Prune(maxDepth int) *Tree[T] {
	out := New[T]()
	if t.root == "" || maxDepth < 0 {
		return out
	}
	_ = t.Walk(t.root, DepthFirst, func(n *Node[T], level int) error {
		out.insert(n, level == 0)
		if level == maxDepth {
			return SkipChildren
		}
		return nil
	})
	return out
}

// Filter returns a copy of the tree holding every node for which match
// returns true, plus all of its ancestors. The root is always kept and child
// order is preserved.
func (t *Tree[T]) Filter(match func(n *Node[T]) bool) *Tree[T] {
	out := New[T]()
	if t.root == "" {
		return out
	}

	keep := map[string]bool{t.root: true}
	for id, n := range t.nodes {
		if !match(n) {
			continue
		}
		for cur := id; cur != "" && !keep[cur]; cur = t.nodes[cur].parent {
			keep[cur] = true
		}
	}

	_ = t.Walk(t.root, DepthFirst, func(n *Node[T], level int) error {
		if !keep[n.identifier] {
			return SkipChildren
		}
		out.insert(n, level == 0)
		return nil
	})
	return out
}

// MaxDepthWithin returns the greatest depth d such that the nodes with level
// <= d number at most maxNodes. The result is never below minDepth nor above
// Depth(). A non-positive maxNodes means no limit.
func (t *Tree[T]) MaxDepthWithin(maxNodes, minDepth int) int {
	depth := t.Depth()
	if maxNodes <= 0 || t.root == "" {
		return depth
	}

	perLevel := make([]int, depth+1)
	_ = t.Walk(t.root, BreadthFirst, func(_ *Node[T], level int) error {
		perLevel[level]++
		return nil
	})

	best, total := -1, 0
	for level, count := range perLevel {
		total += count
		if total > maxNodes {
			break
		}
		best = level
	}
	return min(max(best, minDepth, 0), depth)
}

// insert copies n into t. The caller guarantees that the parent of a non-root
// copy was inserted first.
func (t *Tree[T]) insert(n *Node[T], asRoot bool) {
	cp := &Node[T]{identifier: n.identifier, tag: n.tag, value: n.value}
	if asRoot {
		t.root = cp.identifier
	} else {
		cp.parent = n.parent
		parent := t.nodes[n.parent]
		parent.children = append(parent.children, cp.identifier)
	}
	t.nodes[cp.identifier] = cp
}
