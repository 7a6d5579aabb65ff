// This file implements nested JSON and YAML documents.
package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/treelib/pkg/tree"
	"github.com/mesh-intelligence/treelib/pkg/types"
)

func loadJSON(r io.Reader) (*tree.Tree[any], error) {
	var root types.NodeRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, ErrNoRoot
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	// A nested document holds exactly one root record.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after root record", ErrMalformedRecord)
	}
	return FromRecord(root)
}

func loadYAML(r io.Reader) (*tree.Tree[any], error) {
	var root types.NodeRecord
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, ErrNoRoot
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: more than one YAML document", ErrMalformedRecord)
	}
	return FromRecord(root)
}

// FromRecord builds a tree from a nested document. Records without an id get
// one from tree.NewIdentifier.
func FromRecord(root types.NodeRecord) (*tree.Tree[any], error) {
	t := tree.New[any]()
	if err := insertRecord(t, root, ""); err != nil {
		return nil, err
	}
	return t, nil
}

func insertRecord(t *tree.Tree[any], rec types.NodeRecord, parent string) error {
	if rec.ID == "" {
		rec.ID = tree.NewIdentifier()
	}
	// Nesting defines the parent; an explicit one must agree with it.
	if rec.Parent != "" && rec.Parent != parent {
		return fmt.Errorf("%w: record %q names parent %q inside %q", ErrMalformedRecord, rec.ID, rec.Parent, parent)
	}

	var err error
	if parent == "" {
		_, err = t.CreateRoot(rec.Tag, rec.ID, rec.Value)
	} else {
		_, err = t.CreateChild(rec.Tag, rec.ID, parent, rec.Value)
	}
	if err != nil {
		return err
	}

	for _, child := range rec.Children {
		if err := insertRecord(t, child, rec.ID); err != nil {
			return err
		}
	}
	return nil
}

// Export converts t into a nested record rooted at the tree's root.
func Export[T any](t *tree.Tree[T]) (types.NodeRecord, error) {
	root, ok := t.Root()
	if !ok {
		return types.NodeRecord{}, ErrEmptyTree
	}
	return exportNode(t, root), nil
}

func exportNode[T any](t *tree.Tree[T], n *tree.Node[T]) types.NodeRecord {
	rec := types.NodeRecord{ID: n.Identifier(), Tag: n.Tag(), Value: n.Value()}
	children, _ := t.ChildrenOf(n.Identifier())
	for _, c := range children {
		rec.Children = append(rec.Children, exportNode(t, c))
	}
	return rec
}

// WriteJSON writes t as an indented nested JSON document.
func WriteJSON[T any](w io.Writer, t *tree.Tree[T]) error {
	rec, err := Export(t)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteYAML writes t as a nested YAML document.
func WriteYAML[T any](w io.Writer, t *tree.Tree[T]) error {
	rec, err := Export(t)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
