// This file implements flat JSONL documents.
package loader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/treelib/pkg/tree"
	"github.com/mesh-intelligence/treelib/pkg/types"
)

// loadJSONL builds a tree from one NodeRecord per line. The first record
// without a parent becomes the root; every other record must name a parent
// that appeared on an earlier line. Blank lines are skipped.
func loadJSONL(r io.Reader) (*tree.Tree[any], error) {
	t := tree.New[any]()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec types.NodeRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", lineNo, ErrMalformedRecord, err)
		}
		if err := rec.ValidateFlat(); err != nil {
			return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrMalformedRecord, err)
		}

		var err error
		if rec.Parent == "" {
			_, err = t.CreateRoot(rec.Tag, rec.ID, rec.Value)
		} else {
			_, err = t.CreateChild(rec.Tag, rec.ID, rec.Parent, rec.Value)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning: %w", err)
	}
	if t.Len() == 0 {
		return nil, ErrNoRoot
	}
	return t, nil
}

// Records flattens t into records in depth-first order, parents first.
func Records[T any](t *tree.Tree[T]) []types.NodeRecord {
	root, ok := t.Root()
	if !ok {
		return nil
	}

	var out []types.NodeRecord
	_ = t.Walk(root.Identifier(), tree.DepthFirst, func(n *tree.Node[T], _ int) error {
		parent, _ := n.Parent()
		out = append(out, types.NodeRecord{
			ID:     n.Identifier(),
			Tag:    n.Tag(),
			Parent: parent,
			Value:  n.Value(),
		})
		return nil
	})
	return out
}

// WriteJSONL writes one record per line. An empty tree writes nothing.
func WriteJSONL[T any](w io.Writer, t *tree.Tree[T]) error {
	bw := bufio.NewWriter(w)
	for _, rec := range Records(t) {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding record %q: %w", rec.ID, err)
		}
		if _, err := bw.Write(data); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	return nil
}
