package session

// Command is an application event emitted by key handling and dispatched on
// a later turn of the event loop.
type Command interface {
	isCommand()
	String() string
}

type AddTask struct{}
type UpdateTask struct{}
type DeleteTask struct{}
type Quit struct{}

func (AddTask) isCommand()    {}
func (UpdateTask) isCommand() {}
func (DeleteTask) isCommand() {}
func (Quit) isCommand()       {}

func (AddTask) String() string    { return "add_task" }
func (UpdateTask) String() string { return "update_task" }
func (DeleteTask) String() string { return "delete_task" }
func (Quit) String() string       { return "quit" }

// Action is a logical Normal-mode key binding.
type Action int

const (
	ActionQuit Action = iota
	ActionAddTask
	ActionDeleteTask
	ActionEditTask
	ActionToggleExpand
	ActionSelectNext
	ActionSelectPrevious
	ActionDeselect
)

// Actions lists every bindable action in help order.
func Actions() []Action {
	return []Action{
		ActionAddTask,
		ActionDeselect,
		ActionEditTask,
		ActionDeleteTask,
		ActionSelectPrevious,
		ActionSelectNext,
		ActionToggleExpand,
		ActionQuit,
	}
}

// String is the configuration key for the action.
func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionAddTask:
		return "add_task"
	case ActionDeleteTask:
		return "delete_task"
	case ActionEditTask:
		return "edit_task"
	case ActionToggleExpand:
		return "toggle_expand"
	case ActionSelectNext:
		return "select_next"
	case ActionSelectPrevious:
		return "select_previous"
	case ActionDeselect:
		return "deselect"
	default:
		return "unknown"
	}
}

// Help is the short verb shown in the help line.
func (a Action) Help() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionAddTask:
		return "add"
	case ActionDeleteTask:
		return "delete"
	case ActionEditTask:
		return "edit"
	case ActionToggleExpand:
		return "expand"
	case ActionSelectNext:
		return "next"
	case ActionSelectPrevious:
		return "previous"
	case ActionDeselect:
		return "deselect"
	default:
		return ""
	}
}

type TextKind int

const (
	TextInsert TextKind = iota
	TextBackspace
	TextSubmit
	TextCancel
)

// TextEvent is a key interpreted in Composing or EditingAt mode.
type TextEvent struct {
	Kind  TextKind
	Runes []rune
}

func Insert(r ...rune) TextEvent { return TextEvent{Kind: TextInsert, Runes: r} }

var (
	Backspace = TextEvent{Kind: TextBackspace}
	Submit    = TextEvent{Kind: TextSubmit}
	Cancel    = TextEvent{Kind: TextCancel}
)
