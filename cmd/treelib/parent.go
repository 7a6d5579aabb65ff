// Parent command: show the parent of a node.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parent <file> <id>",
		Short: "Display the parent of a node",
		Long: `Parent prints the parent of the given node. The root has no parent; for
the root the command prints "(root)" or a JSON null.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}

			p, ok, err := t.ParentOf(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !ok {
				if flags.jsonMode {
					return writeJSON(out, nil)
				}
				fmt.Fprintln(out, "(root)")
				return nil
			}

			view := newNodeView(t, p)
			if flags.jsonMode {
				return writeJSON(out, view)
			}
			writeNodeDetails(out, view)
			return nil
		},
	}
}
