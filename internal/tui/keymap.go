package tui

import (
	"tasktree-cli/internal/config"
	"tasktree-cli/internal/session"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/runeutil"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the Normal-mode bindings built from configuration.
type keyMap struct {
	bindings map[session.Action]key.Binding
	// ForceQuit is ctrl+c, honored in every mode.
	ForceQuit key.Binding
}

func newKeyMap(k config.Keys) keyMap {
	km := keyMap{
		bindings: make(map[session.Action]key.Binding, len(session.Actions())),
		ForceQuit: key.NewBinding(
			key.WithKeys(config.ReservedQuit),
			key.WithHelp(config.ReservedQuit, "quit"),
		),
	}
	for _, a := range session.Actions() {
		chord := k.Chord(a)
		km.bindings[a] = key.NewBinding(
			key.WithKeys(chord),
			key.WithHelp(config.DisplayChord(chord), a.Help()),
		)
	}
	return km
}

// action resolves a key to its bound action.
func (k keyMap) action(msg tea.KeyMsg) (session.Action, bool) {
	for _, a := range session.Actions() {
		if key.Matches(msg, k.bindings[a]) {
			return a, true
		}
	}
	return 0, false
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(k.bindings))
	for _, a := range session.Actions() {
		out = append(out, k.bindings[a])
	}
	return out
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// inputSanitizer keeps a task name on one line: pasted newlines and tabs
// become spaces and invalid runes are dropped.
var inputSanitizer = runeutil.NewSanitizer(runeutil.ReplaceTabs(" "), runeutil.ReplaceNewlines(" "))

// textEvent maps a key pressed while composing or editing. Keys with no
// meaning in a text mode report false.
func textEvent(msg tea.KeyMsg) (session.TextEvent, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return session.TextEvent{}, false
		}
		rs := inputSanitizer.Sanitize(append([]rune(nil), msg.Runes...))
		if len(rs) == 0 {
			return session.TextEvent{}, false
		}
		return session.Insert(rs...), true
	case tea.KeySpace:
		return session.Insert(' '), true
	case tea.KeyBackspace:
		return session.Backspace, true
	case tea.KeyEnter:
		return session.Submit, true
	case tea.KeyEsc:
		return session.Cancel, true
	}
	return session.TextEvent{}, false
}
