// Find command: look up a node by identifier.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/treelib/pkg/tree"
)

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <file> <id>",
		Short: "Display a node by identifier",
		Long: `Find loads a tree document and prints the node with the given identifier.
A missing node exits with status 1.

Example:
  treelib find people.yaml rich-dumb
  treelib find people.jsonl dumb --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}

			n, ok := t.Find(args[1])
			if !ok {
				return fmt.Errorf("%w: %q", tree.ErrNodeNotFound, args[1])
			}

			view := newNodeView(t, n)
			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			writeNodeDetails(cmd.OutOrStdout(), view)
			return nil
		},
	}
}
