// Package render draws a tree as indented text lines.
// Implements: line styles ascii, ascii-ex and ascii-em; selected and picked
// node markers; a line budget that hides deep levels.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/treelib/pkg/tree"
	"github.com/mesh-intelligence/treelib/pkg/types"
)

// EmptyTreeLine is written for a tree without a root.
const EmptyTreeLine = "Tree is empty"

// CollapsedSuffix marks a node whose children are hidden by the line budget.
const CollapsedSuffix = " (...)"

// Options control how a tree is drawn.
type Options struct {
	LineStyle  string   // one of the types.LineStyle constants; empty means types.DefaultLineStyle
	ShowIDs    bool     // append [identifier] to each tag
	ShowValues bool     // append ": value" to each tag
	Selected   string   // node marked with ">"; rendering starts at its parent
	Picked     []string // nodes marked with "X"
	MaxLines   int      // 0 means unlimited
	Color      bool
}

// OptionsFromConfig returns Options carrying the configured preferences.
func OptionsFromConfig(cfg types.Config) Options {
	return Options{
		LineStyle: cfg.LineStyle,
		ShowIDs:   cfg.ShowIDs,
		MaxLines:  cfg.MaxLines,
		Color:     cfg.Color,
	}
}

// lineGlyphs holds the vertical bar, branch and last-branch strings.
type lineGlyphs struct {
	vertical string
	branch   string
	last     string
}

var styles = map[string]lineGlyphs{
	types.LineStyleASCII:   {vertical: "|", branch: "|-- ", last: "+-- "},
	types.LineStyleASCIIEx: {vertical: "│", branch: "├── ", last: "└── "},
	types.LineStyleASCIIEm: {vertical: "║", branch: "╠══ ", last: "╚══ "},
}

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pickedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	bothStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// Render writes t to w.
func Render[T any](w io.Writer, t *tree.Tree[T], opts Options) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(t, opts) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return bw.Flush()
}

// String returns the rendering of t as a single string.
func String[T any](t *tree.Tree[T], opts Options) string {
	var sb strings.Builder
	_ = Render(&sb, t, opts)
	return sb.String()
}

// Lines returns the rendered lines of t without trailing newlines.
func Lines[T any](t *tree.Tree[T], opts Options) []string {
	root, ok := t.Root()
	if !ok {
		return []string{EmptyTreeLine}
	}

	glyphs, ok := styles[opts.LineStyle]
	if !ok {
		glyphs = styles[types.DefaultLineStyle]
	}

	selected := opts.Selected
	if selected != "" && !t.Contains(selected) {
		selected = root.Identifier()
	}

	view := visibleTree(t, root.Identifier(), selected, opts.MaxLines)
	r := &renderer[T]{
		src:     t,
		view:    view,
		opts:    opts,
		glyphs:  glyphs,
		marked:  selected != "" || len(opts.Picked) > 0,
		picked:  make(map[string]bool, len(opts.Picked)),
		current: selected,
	}
	for _, id := range opts.Picked {
		r.picked[id] = true
	}

	viewRoot, _ := view.Root()
	r.node(viewRoot, "", true, true)
	return r.lines
}

// visibleTree returns the part of t to draw: the subtree starting at the
// selected node's parent, cut to the deepest level that fits maxLines while
// still showing the selected node.
func visibleTree[T any](t *tree.Tree[T], rootID, selected string, maxLines int) *tree.Tree[T] {
	base := rootID
	if selected != "" {
		if p, ok, _ := t.ParentOf(selected); ok {
			base = p.Identifier()
		}
	}

	view, err := t.Subtree(base)
	if err != nil || maxLines <= 0 {
		return view
	}

	minDepth := 0
	if selected != "" {
		minDepth, _ = view.Distance(selected, base)
	}
	return view.Prune(view.MaxDepthWithin(maxLines, minDepth))
}

type renderer[T any] struct {
	src     *tree.Tree[T]
	view    *tree.Tree[T]
	opts    Options
	glyphs  lineGlyphs
	marked  bool
	picked  map[string]bool
	current string
	lines   []string
}

func (r *renderer[T]) node(n *tree.Node[T], prefix string, last, isRoot bool) {
	var sb strings.Builder
	if !isRoot {
		sb.WriteString(prefix)
		if last {
			sb.WriteString(r.glyphs.last)
		} else {
			sb.WriteString(r.glyphs.branch)
		}
	}
	sb.WriteString(r.label(n))
	r.lines = append(r.lines, r.decorate(n.Identifier(), sb.String()))

	childPrefix := prefix
	if !isRoot {
		if last {
			childPrefix += "    "
		} else {
			childPrefix += r.glyphs.vertical + "   "
		}
	}

	children, _ := r.view.ChildrenOf(n.Identifier())
	for i, c := range children {
		r.node(c, childPrefix, i == len(children)-1, false)
	}
}

func (r *renderer[T]) label(n *tree.Node[T]) string {
	label := n.Tag()
	if label == "" {
		label = n.Identifier()
	}
	if r.opts.ShowIDs {
		label += "[" + n.Identifier() + "]"
	}
	if r.opts.ShowValues {
		label += fmt.Sprintf(": %v", n.Value())
	}
	if n.IsLeaf() {
		if orig, ok := r.src.Find(n.Identifier()); ok && !orig.IsLeaf() {
			label += CollapsedSuffix
		}
	}
	return label
}

// decorate adds the selection markers and colour.
func (r *renderer[T]) decorate(id, line string) string {
	if !r.marked {
		return line
	}

	isSelected := id == r.current
	isPicked := r.picked[id]

	mark := " "
	if isSelected {
		mark = ">"
	}
	pick := " "
	if isPicked {
		pick = "X"
	}
	line = mark + " " + pick + " " + line

	if !r.opts.Color {
		return line
	}
	switch {
	case isSelected && isPicked:
		return bothStyle.Render(line)
	case isSelected:
		return selectedStyle.Render(line)
	case isPicked:
		return pickedStyle.Render(line)
	}
	return line
}
