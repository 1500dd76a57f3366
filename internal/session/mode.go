package session

import "tasktree-cli/internal/model"

// Mode is the interaction state. Exactly one of Normal, Composing or
// EditingAt; the unexported method keeps the set closed.
type Mode interface {
	isMode()
	String() string
}

// Normal is browsing: keys are looked up in the binding table.
type Normal struct{}

// Composing is drafting a new task name in the buffer.
type Composing struct{}

// EditingAt is renaming the task at Path, captured when editing began.
type EditingAt struct {
	Path model.Path
}

func (Normal) isMode()    {}
func (Composing) isMode() {}
func (EditingAt) isMode() {}

func (Normal) String() string    { return "normal" }
func (Composing) String() string { return "composing" }
func (m EditingAt) String() string {
	return "editing:" + m.Path.String()
}

// IsText reports whether m collects typed text into the buffer.
func IsText(m Mode) bool {
	switch m.(type) {
	case Composing, EditingAt:
		return true
	default:
		return false
	}
}
