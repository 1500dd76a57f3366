package model

import (
	"strconv"
	"strings"
)

// Task is a node in the task tree. Subtasks are owned by their parent; there
// are no parent pointers, so upward navigation always replays a Path.
type Task struct {
	Name     string `json:"name" yaml:"name"`
	Subtasks []Task `json:"subtasks,omitempty" yaml:"subtasks,omitempty"`
	Expanded bool   `json:"expanded" yaml:"expanded"`
}

// NewTask returns a collapsed leaf task.
func NewTask(name string) Task {
	return Task{Name: name}
}

func (t Task) HasSubtasks() bool { return len(t.Subtasks) > 0 }

// Clone returns a deep copy of t.
func (t Task) Clone() Task {
	out := Task{Name: t.Name, Expanded: t.Expanded}
	if len(t.Subtasks) > 0 {
		out.Subtasks = make([]Task, len(t.Subtasks))
		for i, st := range t.Subtasks {
			out.Subtasks[i] = st.Clone()
		}
	}
	return out
}

// Path addresses a node by descending child indices from the root collection.
// A Path is only meaningful against the tree snapshot it was derived from.
type Path []int

func (p Path) Valid() bool {
	if len(p) == 0 {
		return false
	}
	for _, i := range p {
		if i < 0 {
			return false
		}
	}
	return true
}

// Parent returns the path of the enclosing node, or nil for a top-level path.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Last returns the final index, or -1 for an empty path.
func (p Path) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// Child returns a new path one level deeper. p is never aliased.
func (p Path) Child(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, i)
}

func (p Path) Depth() int { return len(p) - 1 }

func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// String renders the path dotted, e.g. "0.2.1".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

// Tree is the root collection of top-level tasks.
type Tree struct {
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// Get resolves path for reading. The returned Task is a copy; mutating it does
// not affect the tree.
func (t *Tree) Get(path Path) (Task, bool) {
	n, ok := t.Lookup(path)
	if !ok {
		return Task{}, false
	}
	return n.Clone(), true
}

// Lookup resolves path for mutation. Callers must not keep the pointer beyond
// the current operation: any structural edit may relocate it.
func (t *Tree) Lookup(path Path) (*Task, bool) {
	if t == nil || len(path) == 0 {
		return nil, false
	}
	first := path[0]
	if first < 0 || first >= len(t.Tasks) {
		return nil, false
	}
	cur := &t.Tasks[first]
	for _, i := range path[1:] {
		if i < 0 || i >= len(cur.Subtasks) {
			return nil, false
		}
		cur = &cur.Subtasks[i]
	}
	return cur, true
}

// Len reports the number of nodes in the tree, regardless of expansion.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	var count func(ts []Task) int
	count = func(ts []Task) int {
		n := len(ts)
		for _, st := range ts {
			n += count(st.Subtasks)
		}
		return n
	}
	return count(t.Tasks)
}
