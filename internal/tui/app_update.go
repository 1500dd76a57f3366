package tui

import (
	"errors"

	"tasktree-cli/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Everything after quit is dropped.
	if !m.sess.Running() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncList()
		return m, nil

	case tickMsg:
		m.sess.Tick()
		return m, m.tick()

	case dispatchMsg:
		return m.dispatchNext()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.cursor, cmd = m.cursor.Update(msg)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.sess.Mode()
	m.log.Debug("key", "key", msg.String(), "mode", before.String())

	if key.Matches(msg, m.keys.ForceQuit) {
		return m.enqueue(session.Quit{})
	}

	var emitted session.Command
	if session.IsText(before) {
		if ev, ok := textEvent(msg); ok {
			emitted = m.sess.HandleText(ev)
		}
	} else if a, ok := m.keys.action(msg); ok {
		emitted = m.sess.HandleAction(a)
	}

	cmds := []tea.Cmd{m.syncMode(before)}
	if emitted != nil {
		var cmd tea.Cmd
		m, cmd = m.enqueue(emitted)
		cmds = append(cmds, cmd)
	}
	m.syncList()
	return m, tea.Batch(cmds...)
}

func (m appModel) dispatchNext() (tea.Model, tea.Cmd) {
	if len(m.pending) == 0 {
		return m, nil
	}
	c := m.pending[0]
	m.pending = m.pending[1:]

	before := m.sess.Mode()
	if err := m.sess.Apply(c); err != nil {
		attrs := []any{"command", c.String(), "mode", before.String(), "err", err}
		if errors.Is(err, session.ErrStaleCommand) {
			m.log.Debug("stale command dropped", attrs...)
		} else {
			m.log.Debug("command discarded", attrs...)
		}
	} else {
		out := m.sess.LastOutcome()
		m.log.Debug("command",
			"command", c.String(),
			"mode", m.sess.Mode().String(),
			"path", out.Path.String(),
			"changed", out.Changed,
			"parent_expanded", out.ParentExpanded,
			"tasks", m.sess.Len(),
		)
	}

	if !m.sess.Running() {
		m.pending = nil
		return m, tea.Quit
	}
	cmd := m.syncMode(before)
	m.syncList()
	return m, cmd
}
