// Export command: convert a tree document between formats.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/treelib/internal/loader"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
		from   string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a tree document in another format",
		Long: `Export loads a tree document and writes it as JSONL, JSON or YAML.
Without --output the document goes to stdout; with --output the file is
replaced atomically and its extension selects the format.

Example:
  treelib export people.yaml --format jsonl
  treelib export people.jsonl --output people.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}
			if from != "" {
				if t, err = t.Subtree(from); err != nil {
					return err
				}
			}

			if output != "" {
				if _, err := loader.FormatFromPath(output); err != nil {
					return err
				}
				if err := loader.WriteFile(output, t); err != nil {
					return sysError(err)
				}
				logger.Debug("tree exported", "path", output, "nodes", t.Len())
				return nil
			}

			f, err := loader.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := loader.Write(cmd.OutOrStdout(), t, f); err != nil {
				return sysError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(loader.FormatJSONL), "output format: jsonl, json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&from, "from", "", "export only the subtree rooted at this identifier")

	return cmd
}
