// This file provides Navigator, a cursor that moves a selection through a
// tree by sibling, parent, child and leaf steps.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownMove is returned by ParseMove for a name it does not know.
var ErrUnknownMove = errors.New("unknown move")

// pageSize is the sibling distance of PageUp and PageDown.
const pageSize = 4

// Move names one Navigator step.
type Move string

// Navigator moves.
const (
	MoveNext     Move = "next"
	MovePrevious Move = "previous"
	MovePageDown Move = "page-down"
	MovePageUp   Move = "page-up"
	MoveFirst    Move = "first"
	MoveLast     Move = "last"
	MoveExplore  Move = "explore"
	MoveDeepest  Move = "deepest"
	MoveUp       Move = "up"
	MoveRoot     Move = "root"
	MoveNextLeaf Move = "next-leaf"
	MovePrevLeaf Move = "prev-leaf"
)

var moveAliases = map[string]Move{
	"prev":  MovePrevious,
	"down":  MoveExplore,
	"top":   MoveRoot,
	"pgdn":  MovePageDown,
	"pgup":  MovePageUp,
	"child": MoveExplore,
}

// ParseMove converts a name such as "next" or "page-up" into a Move.
func ParseMove(name string) (Move, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch m := Move(name); m {
	case MoveNext, MovePrevious, MovePageDown, MovePageUp, MoveFirst, MoveLast,
		MoveExplore, MoveDeepest, MoveUp, MoveRoot, MoveNextLeaf, MovePrevLeaf:
		return m, nil
	}
	if m, ok := moveAliases[name]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMove, name)
}

// ParseMoves parses every name, stopping at the first unknown one.
func ParseMoves(names []string) ([]Move, error) {
	moves := make([]Move, 0, len(names))
	for _, name := range names {
		m, err := ParseMove(name)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Navigator holds a selected node of a tree. Sibling moves clamp at the first
// and last child instead of wrapping. When the root is excluded, the selection
// never reaches it and Root selects its first child.
//
// The tree must not change shape while a Navigator is in use.
type Navigator[T any] struct {
	tree        *Tree[T]
	includeRoot bool
	selected    string
}

// NewNavigator returns a Navigator selecting the root, or the root's first
// child when includeRoot is false. On an empty tree nothing is selected and
// every move is a no-op.
func NewNavigator[T any](t *Tree[T], includeRoot bool) *Navigator[T] {
	nav := &Navigator[T]{tree: t, includeRoot: includeRoot}
	nav.Root()
	return nav
}

// Selected returns the identifier of the selected node.
func (nav *Navigator[T]) Selected() (string, bool) {
	return nav.selected, nav.selected != ""
}

// Select makes identifier the selected node.
func (nav *Navigator[T]) Select(identifier string) error {
	if _, err := nav.tree.get(identifier); err != nil {
		return err
	}
	if !nav.includeRoot && identifier == nav.tree.root {
		return fmt.Errorf("%w: %q is the excluded root", ErrNodeNotFound, identifier)
	}
	nav.selected = identifier
	return nil
}

// SelectFirstMatch keeps the selection if it matches, otherwise descends from
// the root through first children until a node matches or a leaf is reached.
func (nav *Navigator[T]) SelectFirstMatch(match func(n *Node[T]) bool) {
	if nav.selected == "" || match(nav.tree.nodes[nav.selected]) {
		return
	}
	nav.Root()
	for !match(nav.tree.nodes[nav.selected]) {
		prev := nav.selected
		nav.Explore()
		if prev == nav.selected {
			return
		}
	}
}

// Apply performs each move in order.
func (nav *Navigator[T]) Apply(moves ...Move) {
	for _, m := range moves {
		switch m {
		case MoveNext:
			nav.Next()
		case MovePrevious:
			nav.Previous()
		case MovePageDown:
			nav.PageDown()
		case MovePageUp:
			nav.PageUp()
		case MoveFirst:
			nav.First()
		case MoveLast:
			nav.Last()
		case MoveExplore:
			nav.Explore()
		case MoveDeepest:
			nav.ExploreDeepest()
		case MoveUp:
			nav.Up()
		case MoveRoot:
			nav.Root()
		case MoveNextLeaf:
			nav.NextLeaf()
		case MovePrevLeaf:
			nav.PrevLeaf()
		}
	}
}

// Next selects the following sibling.
func (nav *Navigator[T]) Next() { nav.moveRelative(1) }

// Previous selects the preceding sibling.
func (nav *Navigator[T]) Previous() { nav.moveRelative(-1) }

// PageDown moves four siblings forward.
func (nav *Navigator[T]) PageDown() { nav.moveRelative(pageSize) }

// PageUp moves four siblings back.
func (nav *Navigator[T]) PageUp() { nav.moveRelative(-pageSize) }

// First selects the first sibling.
func (nav *Navigator[T]) First() {
	if siblings := nav.siblings(); len(siblings) > 0 {
		nav.selected = siblings[0]
	}
}

// Last selects the last sibling.
func (nav *Navigator[T]) Last() {
	if siblings := nav.siblings(); len(siblings) > 0 {
		nav.selected = siblings[len(siblings)-1]
	}
}

// Explore selects the first child.
func (nav *Navigator[T]) Explore() {
	if nav.selected == "" {
		return
	}
	if children := nav.tree.nodes[nav.selected].children; len(children) > 0 {
		nav.selected = children[0]
	}
}

// ExploreDeepest follows first children down to a leaf.
func (nav *Navigator[T]) ExploreDeepest() {
	for {
		prev := nav.selected
		nav.Explore()
		if prev == nav.selected {
			return
		}
	}
}

// Up selects the parent.
func (nav *Navigator[T]) Up() {
	if nav.selected == "" || nav.selected == nav.tree.root {
		return
	}
	parent := nav.tree.nodes[nav.selected].parent
	if !nav.includeRoot && parent == nav.tree.root {
		return
	}
	nav.selected = parent
}

// Root selects the root, or its first child when the root is excluded.
func (nav *Navigator[T]) Root() {
	nav.selected = ""
	root, ok := nav.tree.nodes[nav.tree.root]
	if !ok {
		return
	}
	if nav.includeRoot {
		nav.selected = root.identifier
	} else if len(root.children) > 0 {
		nav.selected = root.children[0]
	}
}

// NextLeaf selects the first leaf after the selection. From an inner node it
// selects the first leaf below it. The selection stays put when no later
// leaf exists.
func (nav *Navigator[T]) NextLeaf() { nav.moveLeaf(1) }

// PrevLeaf climbs to the nearest earlier sibling of the selection or of one
// of its ancestors and selects the first leaf below it. From an inner node it
// selects the first leaf below it.
func (nav *Navigator[T]) PrevLeaf() { nav.moveLeaf(-1) }

func (nav *Navigator[T]) moveLeaf(direction int) {
	if nav.selected == "" {
		return
	}
	orig := nav.selected
	if nav.tree.nodes[orig].IsLeaf() {
		for {
			prev := nav.selected
			nav.moveRelative(direction)
			if nav.selected != prev || nav.selected == nav.tree.root {
				break
			}
			nav.Up()
			if nav.selected == prev || nav.selected == nav.tree.root {
				nav.selected = orig
				return
			}
		}
	}
	nav.ExploreDeepest()
}

// moveRelative moves distance places among the siblings, clamped to the
// first and last sibling.
func (nav *Navigator[T]) moveRelative(distance int) {
	siblings := nav.siblings()
	if len(siblings) == 0 {
		return
	}
	idx := lo.IndexOf(siblings, nav.selected) + distance
	nav.selected = siblings[min(max(idx, 0), len(siblings)-1)]
}

// siblings returns the selected node and its siblings in insertion order.
func (nav *Navigator[T]) siblings() []string {
	if nav.selected == "" {
		return nil
	}
	if nav.selected == nav.tree.root {
		return []string{nav.selected}
	}
	return nav.tree.nodes[nav.tree.nodes[nav.selected].parent].children
}
