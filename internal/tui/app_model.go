package tui

import (
	"io"
	"log/slog"
	"time"

	"tasktree-cli/internal/config"
	"tasktree-cli/internal/outline"
	"tasktree-cli/internal/session"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	titleAdd  = "Add Task (Press Enter to submit)"
	titleEdit = "Edit Task (Press Enter to submit)"
	titleList = "Tasks"
)

type tickMsg time.Time

// dispatchMsg asks the loop to run the oldest queued command.
type dispatchMsg struct{}

type appModel struct {
	sess *session.Session
	cfg  config.Config
	keys keyMap
	pal  palette
	log  *slog.Logger

	help   help.Model
	cursor cursor.Model
	list   viewport.Model

	// pending holds emitted commands in emission order. Each dispatchMsg pops
	// the front, so delivery order of the messages themselves doesn't matter.
	pending []session.Command

	width  int
	height int
}

func newAppModel(cfg config.Config, logger *slog.Logger) appModel {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := help.New()
	h.ShortSeparator = glyphSeparator()
	h.Ellipsis = glyphEllipsis()
	h.Styles.ShortDesc = styleMuted()
	h.Styles.ShortSeparator = styleMuted()
	h.Styles.Ellipsis = styleMuted()

	c := cursor.New()
	c.SetChar(" ")
	c.Blur()

	m := appModel{
		sess:   session.New(outlineStyle(cfg.Theme)),
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		pal:    newPalette(cfg.Theme),
		log:    logger,
		help:   h,
		cursor: c,
		list:   viewport.New(0, 0),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.syncList()
	return m
}

// outlineStyle picks the row prefix. Icons left empty in config follow the
// glyph set.
func outlineStyle(th config.Theme) outline.Style {
	if th.Prefix != config.PrefixIcons {
		return outline.DefaultStyle()
	}
	return outline.Style{
		Prefix:    outline.PrefixIcons,
		Expanded:  orDefault(th.Icons.Expanded, glyphTwistyExpanded()),
		Collapsed: orDefault(th.Icons.Collapsed, glyphTwistyCollapsed()),
		Leaf:      orDefault(th.Icons.Leaf, glyphLeaf()),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (m appModel) Init() tea.Cmd {
	return m.tick()
}

func (m appModel) tick() tea.Cmd {
	return tea.Tick(m.cfg.TickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func dispatch() tea.Msg { return dispatchMsg{} }

// enqueue defers c to a later loop turn.
func (m appModel) enqueue(c session.Command) (appModel, tea.Cmd) {
	m.pending = append(m.pending, c)
	return m, dispatch
}

// syncMode focuses the input cursor when a text mode starts and blurs it
// when one ends.
func (m *appModel) syncMode(before session.Mode) tea.Cmd {
	was, is := session.IsText(before), session.IsText(m.sess.Mode())
	switch {
	case !was && is:
		return m.cursor.Focus()
	case was && !is:
		m.cursor.Blur()
	}
	return nil
}

func (m appModel) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// syncList re-renders the list pane content and scrolls so the selection is
// visible.
func (m *appModel) syncList() {
	w, h := m.size()
	lr, _ := splitPanes(m.cfg.Layout, w, h)
	innerW, innerH := max(0, lr.width-2), max(0, lr.height-2)
	m.list.Width = innerW
	m.list.Height = innerH
	m.list.SetContent(m.renderRows(innerW))

	i, ok := m.sess.Cursor().Index()
	if !ok || innerH == 0 {
		return
	}
	switch {
	case i < m.list.YOffset:
		m.list.SetYOffset(i)
	case i >= m.list.YOffset+innerH:
		m.list.SetYOffset(i - innerH + 1)
	}
}
