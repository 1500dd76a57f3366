package outline

import (
	"strings"

	"tasktree-cli/internal/model"
)

// Row is one visible line of the flattened tree.
type Row struct {
	// Label is the rendered text: prefix followed by the task name.
	Label string
	// Name is the task name without any prefix.
	Name string
	// Path addresses the task in the tree the row was projected from.
	Path        model.Path
	Depth       int
	Expanded    bool
	HasChildren bool
}

type PrefixKind int

const (
	// PrefixIndent pads each depth level with two spaces.
	PrefixIndent PrefixKind = iota
	// PrefixIcons adds an expanded/collapsed/leaf glyph after the indent.
	PrefixIcons
)

const indentUnit = "  "

type Style struct {
	Prefix    PrefixKind
	Expanded  string
	Collapsed string
	Leaf      string
}

// DefaultStyle is the plain indented projection.
func DefaultStyle() Style {
	return Style{Prefix: PrefixIndent}
}

func (s Style) prefix(t model.Task, depth int) string {
	indent := strings.Repeat(indentUnit, depth)
	if s.Prefix != PrefixIcons {
		return indent
	}
	glyph := s.Leaf
	if t.HasSubtasks() {
		if t.Expanded {
			glyph = s.Expanded
		} else {
			glyph = s.Collapsed
		}
	}
	if glyph == "" {
		return indent
	}
	return indent + glyph + " "
}

// Project flattens tree into display rows: pre-order, descending only into
// expanded tasks. The result is freshly allocated on each call and shares no
// memory with tree, so callers may hold it while the tree changes (the rows
// just become stale).
func Project(tree *model.Tree, style Style) []Row {
	if tree == nil || len(tree.Tasks) == 0 {
		return nil
	}
	var out []Row
	var walk func(t model.Task, path model.Path)
	walk = func(t model.Task, path model.Path) {
		depth := path.Depth()
		out = append(out, Row{
			Label:       style.prefix(t, depth) + t.Name,
			Name:        t.Name,
			Path:        path,
			Depth:       depth,
			Expanded:    t.Expanded,
			HasChildren: t.HasSubtasks(),
		})
		if !t.Expanded {
			return
		}
		for i, st := range t.Subtasks {
			walk(st, path.Child(i))
		}
	}
	for i, t := range tree.Tasks {
		walk(t, model.Path{i})
	}
	return out
}

// Visible counts the tasks reachable through expanded ancestors.
func Visible(tree *model.Tree) int {
	if tree == nil {
		return 0
	}
	var count func(ts []model.Task) int
	count = func(ts []model.Task) int {
		n := 0
		for _, t := range ts {
			n++
			if t.Expanded {
				n += count(t.Subtasks)
			}
		}
		return n
	}
	return count(tree.Tasks)
}
