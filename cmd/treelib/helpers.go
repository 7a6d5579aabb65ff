// Shared helpers for treelib CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mesh-intelligence/treelib/internal/loader"
	"github.com/mesh-intelligence/treelib/pkg/tree"
)

// loadTree reads a tree document. A failure to read an existing file is a
// system error; anything else is a problem with the user's input.
func loadTree(path string) (*tree.Tree[any], error) {
	t, err := loader.LoadFile(path)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) && !errors.Is(err, os.ErrNotExist) {
			return nil, sysError(err)
		}
		return nil, err
	}
	logger.Debug("tree loaded", "path", path, "nodes", t.Len(), "depth", t.Depth())
	return t, nil
}

// nodeView is the JSON and text representation of a single node.
type nodeView struct {
	ID       string   `json:"id"`
	Tag      string   `json:"tag"`
	Value    any      `json:"value"`
	Parent   string   `json:"parent,omitempty"`
	Children []string `json:"children"`
	Level    int      `json:"level"`
}

func newNodeView[T any](t *tree.Tree[T], n *tree.Node[T]) nodeView {
	parent, _ := n.Parent()
	level, _ := t.Level(n.Identifier())
	children := n.Children()
	if children == nil {
		children = []string{}
	}
	return nodeView{
		ID:       n.Identifier(),
		Tag:      n.Tag(),
		Value:    n.Value(),
		Parent:   parent,
		Children: children,
		Level:    level,
	}
}

func newNodeViews[T any](t *tree.Tree[T], nodes []*tree.Node[T]) []nodeView {
	out := make([]nodeView, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, newNodeView(t, n))
	}
	return out
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal JSON: %w", err))
	}
	if _, err := fmt.Fprintln(w, string(out)); err != nil {
		return sysError(err)
	}
	return nil
}

// writeNodeDetails prints a node in human-readable form.
func writeNodeDetails(w io.Writer, v nodeView) {
	fmt.Fprintf(w, "ID:       %s\n", v.ID)
	fmt.Fprintf(w, "Tag:      %s\n", v.Tag)
	fmt.Fprintf(w, "Value:    %v\n", v.Value)
	if v.Parent != "" {
		fmt.Fprintf(w, "Parent:   %s\n", v.Parent)
	} else {
		fmt.Fprintln(w, "Parent:   (root)")
	}
	fmt.Fprintf(w, "Level:    %d\n", v.Level)
	fmt.Fprintf(w, "Children: %d\n", len(v.Children))
	for _, c := range v.Children {
		fmt.Fprintf(w, "  - %s\n", c)
	}
}

// writeNodeList prints one "identifier<TAB>tag" line per node.
func writeNodeList(w io.Writer, views []nodeView) {
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\n", v.ID, v.Tag)
	}
}

// writeNodes prints nodes as JSON or as a list, depending on --json.
func writeNodes(w io.Writer, views []nodeView) error {
	if flags.jsonMode {
		return writeJSON(w, views)
	}
	writeNodeList(w, views)
	return nil
}
