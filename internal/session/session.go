package session

import (
	"errors"

	"tasktree-cli/internal/model"
	"tasktree-cli/internal/mutate"
	"tasktree-cli/internal/outline"
)

// ErrStaleCommand reports a command that arrived when the mode it was
// emitted from is no longer active.
var ErrStaleCommand = errors.New("stale command")

// Session owns all interactive state for one run: the tree, the selection,
// the mode and the text buffer. It is not safe for concurrent use; the event
// loop is its only caller.
type Session struct {
	tree    model.Tree
	cursor  Cursor
	mode    Mode
	buffer  []rune
	running bool
	// submitted is set once Enter has emitted a command for the buffer, so
	// keys arriving before that command is handled cannot change it.
	submitted bool
	style     outline.Style
	last      Outcome
}

// Outcome is the structural effect of the last applied command.
type Outcome struct {
	Path model.Path
	// ParentExpanded is set when an add opened a collapsed parent.
	ParentExpanded bool
	// Changed is false when nothing in the tree changed, e.g. a rename to the
	// same name.
	Changed bool
}

func New(style outline.Style) *Session {
	return &Session{
		mode:    Normal{},
		running: true,
		style:   style,
	}
}

// Snapshot is the read-only view handed to rendering.
type Snapshot struct {
	Rows   []outline.Row
	Cursor Cursor
	Mode   Mode
	Buffer string
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Rows:   s.Rows(),
		Cursor: s.cursor,
		Mode:   s.mode,
		Buffer: string(s.buffer),
	}
}

// Rows projects the live tree. Never cached.
func (s *Session) Rows() []outline.Row { return outline.Project(&s.tree, s.style) }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Cursor() Cursor { return s.cursor }

func (s *Session) Buffer() string { return string(s.buffer) }

func (s *Session) Running() bool { return s.running }

func (s *Session) Style() outline.Style { return s.style }

// Task returns a copy of the task at path.
func (s *Session) Task(path model.Path) (model.Task, bool) { return s.tree.Get(path) }

// Len reports the total number of tasks, visible or not.
func (s *Session) Len() int { return s.tree.Len() }

// LastOutcome reports what the most recent Apply did to the tree.
func (s *Session) LastOutcome() Outcome { return s.last }

// Selected re-derives the selected row from a fresh projection.
func (s *Session) Selected() (outline.Row, bool) {
	i, ok := s.cursor.Index()
	if !ok {
		return outline.Row{}, false
	}
	rows := s.Rows()
	if i >= len(rows) {
		return outline.Row{}, false
	}
	return rows[i], true
}

// Select sets the cursor, clamped to the current projection.
func (s *Session) Select(c Cursor) {
	s.cursor = c.Clamp(len(s.Rows()))
}

// Tick is the timer hook. It does no work today.
func (s *Session) Tick() {}

// HandleAction interprets a Normal-mode binding. It returns the command to
// queue, or nil when the action completed in place. Outside Normal mode it is
// ignored.
func (s *Session) HandleAction(a Action) Command {
	if _, ok := s.mode.(Normal); !ok {
		return nil
	}
	switch a {
	case ActionQuit:
		return Quit{}
	case ActionAddTask:
		s.beginText(Composing{}, "")
	case ActionEditTask:
		s.beginEdit()
	case ActionDeleteTask:
		return DeleteTask{}
	case ActionToggleExpand:
		s.toggleExpand()
	case ActionSelectNext:
		s.cursor = s.cursor.Next(len(s.Rows()))
	case ActionSelectPrevious:
		s.cursor = s.cursor.Prev(len(s.Rows()))
	case ActionDeselect:
		s.cursor = None()
	}
	return nil
}

// HandleText interprets a key in Composing or EditingAt mode.
func (s *Session) HandleText(e TextEvent) Command {
	if !IsText(s.mode) || s.submitted {
		return nil
	}
	switch e.Kind {
	case TextInsert:
		s.buffer = append(s.buffer, e.Runes...)
	case TextBackspace:
		if len(s.buffer) > 0 {
			s.buffer = s.buffer[:len(s.buffer)-1]
		}
	case TextCancel:
		s.resetToNormal()
	case TextSubmit:
		s.submitted = true
		if _, ok := s.mode.(EditingAt); ok {
			return UpdateTask{}
		}
		return AddTask{}
	}
	return nil
}

// Apply runs the handler for c. Structural failures are returned for logging
// but leave the session consistent; the pending operation is dropped.
func (s *Session) Apply(c Command) error {
	s.last = Outcome{}
	switch c.(type) {
	case AddTask:
		return s.addTask()
	case UpdateTask:
		return s.updateTask()
	case DeleteTask:
		return s.deleteTask()
	case Quit:
		s.running = false
	}
	return nil
}

func (s *Session) beginText(m Mode, initial string) {
	s.mode = m
	s.buffer = []rune(initial)
	s.submitted = false
}

func (s *Session) beginEdit() {
	row, ok := s.Selected()
	if !ok {
		return
	}
	t, ok := s.tree.Get(row.Path)
	if !ok {
		return
	}
	s.beginText(EditingAt{Path: row.Path.Clone()}, t.Name)
}

func (s *Session) toggleExpand() {
	row, ok := s.Selected()
	if !ok {
		return
	}
	if _, err := mutate.ToggleExpanded(&s.tree, row.Path); err != nil {
		return
	}
	s.clamp()
}

// drain hands the buffer out exactly once and clears it.
func (s *Session) drain() string {
	out := string(s.buffer)
	s.buffer = nil
	return out
}

func (s *Session) resetToNormal() {
	s.mode = Normal{}
	s.buffer = nil
	s.submitted = false
}

func (s *Session) addTask() error {
	if _, ok := s.mode.(Composing); !ok {
		return ErrStaleCommand
	}
	name := s.drain()
	defer s.resetToNormal()

	var res mutate.AddResult
	if row, ok := s.Selected(); ok {
		var err error
		if res, err = mutate.AppendChild(&s.tree, row.Path, name); err != nil {
			return err
		}
	} else {
		res = mutate.AppendRoot(&s.tree, name)
	}
	s.last = Outcome{Path: res.Path, ParentExpanded: res.ParentExpanded, Changed: true}
	s.clamp()
	return nil
}

func (s *Session) updateTask() error {
	edit, ok := s.mode.(EditingAt)
	if !ok {
		return ErrStaleCommand
	}
	name := s.drain()
	defer s.resetToNormal()

	changed, err := mutate.Rename(&s.tree, edit.Path, name)
	if err != nil {
		return err
	}
	s.last = Outcome{Path: edit.Path, Changed: changed}
	return nil
}

func (s *Session) deleteTask() error {
	row, ok := s.Selected()
	if !ok {
		return nil
	}
	if _, err := mutate.Remove(&s.tree, row.Path); err != nil {
		return err
	}
	s.last = Outcome{Path: row.Path, Changed: true}
	if edit, ok := s.mode.(EditingAt); ok {
		s.mode = EditingAt{Path: rebaseAfterRemove(edit.Path, row.Path)}
	}
	s.clamp()
	return nil
}

func (s *Session) clamp() {
	s.cursor = s.cursor.Clamp(len(s.Rows()))
}

// rebaseAfterRemove adjusts p for the removal of removed. A path inside the
// removed subtree becomes nil, which never resolves. A later sibling (or a
// descendant of one) shifts down by one at the removed level.
func rebaseAfterRemove(p, removed model.Path) model.Path {
	if len(removed) == 0 || len(p) < len(removed) {
		return p
	}
	level := len(removed) - 1
	for i := 0; i < level; i++ {
		if p[i] != removed[i] {
			return p
		}
	}
	switch {
	case p[level] == removed[level]:
		return nil
	case p[level] > removed[level]:
		out := p.Clone()
		out[level]--
		return out
	default:
		return p
	}
}
