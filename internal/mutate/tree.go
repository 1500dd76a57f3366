package mutate

import (
	"tasktree-cli/internal/model"
)

type AddResult struct {
	// Path of the new task, valid against the tree as it is right after the add.
	Path model.Path
	// ParentExpanded is true when the add forced a collapsed parent open.
	ParentExpanded bool
}

// AppendRoot appends a new top-level task.
func AppendRoot(tree *model.Tree, name string) AddResult {
	tree.Tasks = append(tree.Tasks, model.NewTask(name))
	return AddResult{Path: model.Path{len(tree.Tasks) - 1}}
}

// AppendChild appends a new subtask under parent and forces parent open so the
// new child is visible in the projection.
func AppendChild(tree *model.Tree, parent model.Path, name string) (AddResult, error) {
	p, ok := tree.Lookup(parent)
	if !ok {
		return AddResult{}, notFound("parent", parent)
	}
	p.Subtasks = append(p.Subtasks, model.NewTask(name))
	res := AddResult{
		Path:           parent.Child(len(p.Subtasks) - 1),
		ParentExpanded: !p.Expanded,
	}
	p.Expanded = true
	return res, nil
}

// Rename replaces the name of the task at path. Changed is false when the
// name was already identical.
func Rename(tree *model.Tree, path model.Path, name string) (changed bool, err error) {
	t, ok := tree.Lookup(path)
	if !ok {
		return false, notFound("task", path)
	}
	if t.Name == name {
		return false, nil
	}
	t.Name = name
	return true, nil
}

// ToggleExpanded flips the expanded flag of the task at path and returns the
// new value. Leaves toggle too; the flag only matters once they gain children.
func ToggleExpanded(tree *model.Tree, path model.Path) (bool, error) {
	t, ok := tree.Lookup(path)
	if !ok {
		return false, notFound("task", path)
	}
	t.Expanded = !t.Expanded
	return t.Expanded, nil
}

// Remove deletes the task at path together with its subtree and returns it.
func Remove(tree *model.Tree, path model.Path) (model.Task, error) {
	if tree == nil || !path.Valid() {
		return model.Task{}, notFound("task", path)
	}
	idx := path.Last()
	if len(path) == 1 {
		if idx >= len(tree.Tasks) {
			return model.Task{}, notFound("task", path)
		}
		removed := tree.Tasks[idx]
		tree.Tasks = removeAt(tree.Tasks, idx)
		return removed, nil
	}
	parent, ok := tree.Lookup(path.Parent())
	if !ok || idx >= len(parent.Subtasks) {
		return model.Task{}, notFound("task", path)
	}
	removed := parent.Subtasks[idx]
	parent.Subtasks = removeAt(parent.Subtasks, idx)
	return removed, nil
}

func removeAt(ts []model.Task, i int) []model.Task {
	out := make([]model.Task, 0, len(ts)-1)
	out = append(out, ts[:i]...)
	return append(out, ts[i+1:]...)
}
