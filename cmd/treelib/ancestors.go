// Ancestors command: print the path from a node up to the root.
package main

import (
	"github.com/spf13/cobra"
)

func newAncestorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ancestors <file> <id>",
		Short: "List a node and its ancestors up to the root",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}

			chain, err := t.Ancestors(args[1])
			if err != nil {
				return err
			}
			return writeNodes(cmd.OutOrStdout(), newNodeViews(t, chain))
		},
	}
}
