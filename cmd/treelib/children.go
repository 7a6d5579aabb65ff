// Children command: list the direct children of a node.
package main

import (
	"github.com/spf13/cobra"
)

func newChildrenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "children <file> <id>",
		Short: "List the children of a node in insertion order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}

			children, err := t.ChildrenOf(args[1])
			if err != nil {
				return err
			}
			return writeNodes(cmd.OutOrStdout(), newNodeViews(t, children))
		},
	}
}
