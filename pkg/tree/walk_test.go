package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newWide builds:
//
//	a
//	├── b
//	│   ├── d
//	│   └── e
//	└── c
//	    └── f
func newWide(t *testing.T) *Tree[string] {
	t.Helper()
	tr := New[string]()
	_, err := tr.CreateRoot("A", "a", "va")
	require.NoError(t, err)
	for _, e := range [][2]string{{"b", "a"}, {"c", "a"}, {"d", "b"}, {"e", "b"}, {"f", "c"}} {
		_, err := tr.CreateChild(e[0], e[0], e[1], "v"+e[0])
		require.NoError(t, err)
	}
	return tr
}

func TestWalkOrders(t *testing.T) {
	tests := []struct {
		name       string
		mode       WalkMode
		start      string
		wantIDs    []string
		wantLevels []int
	}{
		{
			name:       "depth first from root",
			mode:       DepthFirst,
			start:      "a",
			wantIDs:    []string{"a", "b", "d", "e", "c", "f"},
			wantLevels: []int{0, 1, 2, 2, 1, 2},
		},
		{
			name:       "breadth first from root",
			mode:       BreadthFirst,
			start:      "a",
			wantIDs:    []string{"a", "b", "c", "d", "e", "f"},
			wantLevels: []int{0, 1, 1, 2, 2, 2},
		},
		{
			name:       "levels are relative to start",
			mode:       DepthFirst,
			start:      "b",
			wantIDs:    []string{"b", "d", "e"},
			wantLevels: []int{0, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newWide(t)
			var gotIDs []string
			var gotLevels []int

			err := tr.Walk(tt.start, tt.mode, func(n *Node[string], level int) error {
				gotIDs = append(gotIDs, n.Identifier())
				gotLevels = append(gotLevels, level)
				return nil
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, gotIDs)
			assert.Equal(t, tt.wantLevels, gotLevels)
		})
	}
}

func TestWalkSkipChildren(t *testing.T) {
	tr := newWide(t)
	var got []string

	err := tr.Walk("a", DepthFirst, func(n *Node[string], _ int) error {
		got = append(got, n.Identifier())
		if n.Identifier() == "b" {
			return SkipChildren
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "f"}, got)
}

func TestWalkStopsOnError(t *testing.T) {
	tr := newWide(t)
	stop := errors.New("stop")
	visited := 0

	err := tr.Walk("a", BreadthFirst, func(n *Node[string], _ int) error {
		visited++
		if n.Identifier() == "c" {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestWalkMissingStart(t *testing.T) {
	tr := newWide(t)

	err := tr.Walk("missing", DepthFirst, func(*Node[string], int) error {
		t.Fatal("callback must not run")
		return nil
	})

	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestLeaves(t *testing.T) {
	tr := newWide(t)

	leaves, err := tr.Leaves("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e", "f"}, ids(leaves))

	leaves, err = tr.Leaves("f")
	require.NoError(t, err)
	assert.Equal(t, []string{"f"}, ids(leaves))

	_, err = tr.Leaves("missing")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}
