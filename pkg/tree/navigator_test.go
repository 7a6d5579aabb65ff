package tree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRow builds a root "r" with six leaf children c0..c5.
func newRow(t *testing.T) *Tree[int] {
	t.Helper()
	tr := New[int]()
	_, err := tr.CreateRoot("R", "r", 0)
	require.NoError(t, err)
	for i := range 6 {
		id := fmt.Sprintf("c%d", i)
		_, err := tr.CreateChild(id, id, "r", i)
		require.NoError(t, err)
	}
	return tr
}

func selected[T any](t *testing.T, nav *Navigator[T]) string {
	t.Helper()
	id, ok := nav.Selected()
	require.True(t, ok)
	return id
}

func TestNewNavigatorStartsAtRoot(t *testing.T) {
	tr := newWide(t)

	assert.Equal(t, "a", selected(t, NewNavigator(tr, true)))
	assert.Equal(t, "b", selected(t, NewNavigator(tr, false)))
}

func TestNavigatorEmptyTree(t *testing.T) {
	nav := NewNavigator(New[int](), true)

	nav.Apply(MoveNext, MoveExplore, MoveUp, MoveNextLeaf, MovePrevLeaf, MoveLast, MoveRoot)

	_, ok := nav.Selected()
	assert.False(t, ok)
}

func TestNavigatorSiblingMoves(t *testing.T) {
	tests := []struct {
		name  string
		start string
		moves []Move
		want  string
	}{
		{name: "next", start: "c0", moves: []Move{MoveNext}, want: "c1"},
		{name: "next clamps at last", start: "c5", moves: []Move{MoveNext}, want: "c5"},
		{name: "previous", start: "c3", moves: []Move{MovePrevious}, want: "c2"},
		{name: "previous clamps at first", start: "c0", moves: []Move{MovePrevious}, want: "c0"},
		{name: "page down", start: "c0", moves: []Move{MovePageDown}, want: "c4"},
		{name: "page down clamps", start: "c3", moves: []Move{MovePageDown}, want: "c5"},
		{name: "page up", start: "c5", moves: []Move{MovePageUp}, want: "c1"},
		{name: "page up clamps", start: "c2", moves: []Move{MovePageUp}, want: "c0"},
		{name: "first", start: "c4", moves: []Move{MoveFirst}, want: "c0"},
		{name: "last", start: "c1", moves: []Move{MoveLast}, want: "c5"},
		{name: "root has no siblings", start: "r", moves: []Move{MoveNext, MovePageUp, MoveLast}, want: "r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(newRow(t), true)
			require.NoError(t, nav.Select(tt.start))

			nav.Apply(tt.moves...)

			assert.Equal(t, tt.want, selected(t, nav))
		})
	}
}

func TestNavigatorVerticalMoves(t *testing.T) {
	tests := []struct {
		name        string
		includeRoot bool
		start       string
		moves       []Move
		want        string
	}{
		{name: "explore", includeRoot: true, start: "a", moves: []Move{MoveExplore}, want: "b"},
		{name: "explore on leaf", includeRoot: true, start: "e", moves: []Move{MoveExplore}, want: "e"},
		{name: "deepest", includeRoot: true, start: "a", moves: []Move{MoveDeepest}, want: "d"},
		{name: "up", includeRoot: true, start: "e", moves: []Move{MoveUp}, want: "b"},
		{name: "up at root", includeRoot: true, start: "a", moves: []Move{MoveUp}, want: "a"},
		{name: "up stops below excluded root", start: "c", moves: []Move{MoveUp}, want: "c"},
		{name: "root", includeRoot: true, start: "f", moves: []Move{MoveRoot}, want: "a"},
		{name: "root excluded", start: "f", moves: []Move{MoveRoot}, want: "b"},
		{name: "sequence", includeRoot: true, start: "a", moves: []Move{MoveExplore, MoveNext, MoveExplore}, want: "f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := NewNavigator(newWide(t), tt.includeRoot)
			require.NoError(t, nav.Select(tt.start))

			nav.Apply(tt.moves...)

			assert.Equal(t, tt.want, selected(t, nav))
		})
	}
}

func TestNavigatorLeafMoves(t *testing.T) {
	tests := []struct {
		name        string
		includeRoot bool
		start       string
		move        Move
		want        string
	}{
		{name: "next leaf sibling", includeRoot: true, start: "d", move: MoveNextLeaf, want: "e"},
		{name: "next leaf in next branch", includeRoot: true, start: "e", move: MoveNextLeaf, want: "f"},
		{name: "no leaf after last", includeRoot: true, start: "f", move: MoveNextLeaf, want: "f"},
		{name: "next leaf from inner node", includeRoot: true, start: "b", move: MoveNextLeaf, want: "d"},
		{name: "prev leaf sibling", includeRoot: true, start: "e", move: MovePrevLeaf, want: "d"},
		{name: "prev leaf in previous branch", includeRoot: true, start: "f", move: MovePrevLeaf, want: "d"},
		{name: "no leaf before first", includeRoot: true, start: "d", move: MovePrevLeaf, want: "d"},
		{name: "excluded root stops the climb", start: "f", move: MoveNextLeaf, want: "f"},
		{name: "leaf root", includeRoot: true, start: "a", move: MoveNextLeaf, want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newWide(t)
			if tt.start == "a" {
				tr = New[string]()
				_, err := tr.CreateRoot("A", "a", "va")
				require.NoError(t, err)
			}
			nav := NewNavigator(tr, tt.includeRoot)
			require.NoError(t, nav.Select(tt.start))

			nav.Apply(tt.move)

			assert.Equal(t, tt.want, selected(t, nav))
		})
	}
}

func TestNavigatorSelect(t *testing.T) {
	nav := NewNavigator(newWide(t), false)

	assert.ErrorIs(t, nav.Select("missing"), ErrNodeNotFound)
	assert.ErrorIs(t, nav.Select("a"), ErrNodeNotFound)
	assert.Equal(t, "b", selected(t, nav))

	require.NoError(t, nav.Select("e"))
	assert.Equal(t, "e", selected(t, nav))
}

func TestNavigatorSelectFirstMatch(t *testing.T) {
	tr := newWide(t)
	isLeaf := func(n *Node[string]) bool { return n.IsLeaf() }

	nav := NewNavigator(tr, true)
	nav.SelectFirstMatch(isLeaf)
	assert.Equal(t, "d", selected(t, nav))

	require.NoError(t, nav.Select("f"))
	nav.SelectFirstMatch(isLeaf)
	assert.Equal(t, "f", selected(t, nav), "a matching selection is kept")

	nav.SelectFirstMatch(func(*Node[string]) bool { return false })
	assert.Equal(t, "d", selected(t, nav), "descent stops at a leaf")
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		name    string
		want    Move
		wantErr error
	}{
		{name: "next", want: MoveNext},
		{name: " Page-Down ", want: MovePageDown},
		{name: "prev", want: MovePrevious},
		{name: "next-leaf", want: MoveNextLeaf},
		{name: "sideways", wantErr: ErrUnknownMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.name)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	moves, err := ParseMoves([]string{"explore", "up"})
	require.NoError(t, err)
	assert.Equal(t, []Move{MoveExplore, MoveUp}, moves)
	_, err = ParseMoves([]string{"explore", "warp"})
	assert.ErrorIs(t, err, ErrUnknownMove)
}
