// Show command: render a tree document as text.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/treelib/internal/loader"
	"github.com/mesh-intelligence/treelib/internal/render"
	"github.com/mesh-intelligence/treelib/pkg/tree"
	"github.com/mesh-intelligence/treelib/pkg/types"
)

type showFlags struct {
	selected string
	picked   []string
	maxLines int
	ids      bool
	values   bool
	color    bool
	style    string
	search   string
	from     string
	moves    []string
}

func newShowCmd() *cobra.Command {
	var f showFlags

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Render a tree document",
		Long: `Show loads a tree document and renders it with box-drawing lines.

--select marks a node with ">" and starts the drawing at its parent.
--pick marks nodes with "X". --max-lines hides the deepest levels until the
drawing fits; nodes with hidden children end in "(...)". --search keeps only
nodes whose tag or value contains the pattern (case-insensitive), plus their
ancestors.

--move walks the selection from --select (or from the first search match,
or the root) before drawing: next, previous, page-down, page-up, first,
last, explore, deepest, up, root, next-leaf, prev-leaf. Sibling moves stop
at the first and last child.

Example:
  treelib show people.yaml
  treelib show people.yaml --select heir --pick poor-dumb
  treelib show people.jsonl --search rich --ids
  treelib show people.yaml --select rich-dumb --move next,explore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0])
			if err != nil {
				return err
			}

			if f.from != "" {
				if t, err = t.Subtree(f.from); err != nil {
					return err
				}
			}
			if f.search != "" {
				t = t.Filter(matchPattern(f.search))
				logger.Debug("search applied", "pattern", f.search, "nodes", t.Len())
			}
			if len(f.moves) > 0 {
				if f.selected, err = navigate(t, f.selected, f.search, f.moves); err != nil {
					return err
				}
			}

			opts := render.OptionsFromConfig(appConfig)
			fl := cmd.Flags()
			if fl.Changed("max-lines") {
				opts.MaxLines = f.maxLines
			}
			if fl.Changed("ids") {
				opts.ShowIDs = f.ids
			}
			if fl.Changed("color") {
				opts.Color = f.color
			}
			if fl.Changed("style") {
				opts.LineStyle = f.style
			}
			if err := (types.Config{MaxLines: opts.MaxLines, LineStyle: opts.LineStyle}).Validate(); err != nil {
				return err
			}
			opts.ShowValues = f.values
			opts.Selected = f.selected
			opts.Picked = f.picked

			out := cmd.OutOrStdout()
			if flags.jsonMode {
				if err := loader.WriteJSON(out, t); err != nil {
					return sysError(err)
				}
				return nil
			}
			if err := render.Render(out, t, opts); err != nil {
				return sysError(err)
			}
			if f.selected != "" {
				writeFooter(cmd, t, f.selected, f.search)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.selected, "select", "", "identifier of the current node")
	fl.StringSliceVar(&f.picked, "pick", nil, "identifiers of picked nodes (repeatable)")
	fl.IntVar(&f.maxLines, "max-lines", 0, "maximum number of lines (overrides config; 0 = unlimited)")
	fl.BoolVar(&f.ids, "ids", false, "show node identifiers (overrides config)")
	fl.BoolVar(&f.values, "values", false, "show node values")
	fl.BoolVar(&f.color, "color", false, "colour selected and picked nodes (overrides config)")
	fl.StringVar(&f.style, "style", "", "line style: ascii, ascii-ex or ascii-em (overrides config)")
	fl.StringVar(&f.search, "search", "", "keep only nodes matching this pattern")
	fl.StringVar(&f.from, "from", "", "render only the subtree rooted at this identifier")
	fl.StringSliceVar(&f.moves, "move", nil, "selection moves applied in order (comma-separated or repeatable)")

	return cmd
}

// navigate starts a Navigator at selected, or at the first node matching
// search, applies the named moves and returns the resulting selection.
func navigate(t *tree.Tree[any], selected, search string, names []string) (string, error) {
	moves, err := tree.ParseMoves(names)
	if err != nil {
		return "", err
	}
	nav := tree.NewNavigator(t, true)
	switch {
	case selected != "":
		if err := nav.Select(selected); err != nil {
			return "", err
		}
	case search != "":
		nav.SelectFirstMatch(matchPattern(search))
	}
	nav.Apply(moves...)
	id, _ := nav.Selected()
	logger.Debug("selection moved", "moves", names, "selected", id)
	return id, nil
}

// matchPattern matches nodes whose tag or value contains pattern, ignoring case.
func matchPattern(pattern string) func(*tree.Node[any]) bool {
	pattern = strings.ToLower(pattern)
	return func(n *tree.Node[any]) bool {
		if strings.Contains(strings.ToLower(n.Tag()), pattern) {
			return true
		}
		v := n.Value()
		return v != nil && strings.Contains(strings.ToLower(fmt.Sprint(v)), pattern)
	}
}

// writeFooter prints the current node and the active search filter.
func writeFooter(cmd *cobra.Command, t *tree.Tree[any], selected, search string) {
	label := selected
	if n, ok := t.Find(selected); ok {
		label = n.Tag()
	}
	line := "\nCurrent: " + label
	if search != "" {
		line += ", Search filter: " + search
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
