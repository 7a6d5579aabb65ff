// Demo command: build the people tree step by step.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/treelib/internal/loader"
	"github.com/mesh-intelligence/treelib/internal/render"
	"github.com/mesh-intelligence/treelib/pkg/tree"
	"github.com/mesh-intelligence/treelib/pkg/types"
)

// demoStep is one creation call of the demo and its outcome.
type demoStep struct {
	Op     string `json:"op"`
	Tag    string `json:"tag"`
	ID     string `json:"id"`
	Parent string `json:"parent,omitempty"`
	Value  int    `json:"value"`
	Error  string `json:"error,omitempty"`
}

// demoSteps creates the people tree. The "Smart people" entries reuse the
// identifier "dumb": once as a second root and once as a child, and both
// attempts must be rejected without touching the existing node.
var demoSteps = []demoStep{
	{Op: "root", Tag: "Dumb people", ID: "dumb", Value: 3},
	{Op: "child", Tag: "Rich dumb people", ID: "rich-dumb", Parent: "dumb", Value: 6},
	{Op: "child", Tag: "Poor dumb people", ID: "poor-dumb", Parent: "dumb", Value: 8},
	{Op: "root", Tag: "Smart people", ID: "dumb", Value: 11},
	{Op: "child", Tag: "Smart people", ID: "dumb", Parent: "dumb", Value: 11},
	{Op: "child", Tag: "Rich smart people", ID: "rich-smart", Parent: "dumb", Value: 12},
	{Op: "child", Tag: "Poor smart people", ID: "poor-smart", Parent: "dumb", Value: 13},
}

// runDemo applies demoSteps to a new tree and records each outcome.
func runDemo() (*tree.Tree[int], []demoStep) {
	t := tree.New[int]()
	results := make([]demoStep, 0, len(demoSteps))
	for _, s := range demoSteps {
		var err error
		if s.Op == "root" {
			_, err = t.CreateRoot(s.Tag, s.ID, s.Value)
		} else {
			_, err = t.CreateChild(s.Tag, s.ID, s.Parent, s.Value)
		}
		if err != nil {
			s.Error = err.Error()
			logger.Debug("demo step rejected", "op", s.Op, "id", s.ID, "err", err)
		}
		results = append(results, s)
	}
	return t, results
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the people tree and show each step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, steps := runDemo()
			out := cmd.OutOrStdout()

			if flags.jsonMode {
				rec, err := loader.Export(t)
				if err != nil {
					return err
				}
				return writeJSON(out, struct {
					Steps []demoStep       `json:"steps"`
					Tree  types.NodeRecord `json:"tree"`
				}{steps, rec})
			}

			for i, s := range steps {
				target := "root"
				if s.Op == "child" {
					target = "child of " + s.Parent
				}
				outcome := "ok"
				if s.Error != "" {
					outcome = "rejected: " + s.Error
				}
				fmt.Fprintf(out, "%d. %s %q as %s (value %d): %s\n", i+1, s.ID, s.Tag, target, s.Value, outcome)
			}
			fmt.Fprintln(out)

			opts := render.OptionsFromConfig(appConfig)
			opts.ShowValues = true
			if err := render.Render(out, t, opts); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
}
