package tui

import (
	"strings"
	"unicode/utf8"

	"tasktree-cli/internal/session"

	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	if !m.sess.Running() {
		return ""
	}
	w, h := m.size()
	lr, ir := splitPanes(m.cfg.Layout, w, h)

	list := renderBox(lr, titleList, m.list.View(), m.pal)
	input := renderBox(ir, m.inputTitle(ir.width-4), m.inputBody(ir.width-2), m.pal)
	return joinPanes(m.cfg.Layout.Direction, list, input)
}

// renderRows draws the projection. When a row is selected it carries the
// highlight symbol and every other row is padded by the symbol's width.
func (m appModel) renderRows(width int) string {
	rows := m.sess.Rows()
	if len(rows) == 0 {
		return ""
	}
	sel, hasSel := m.sess.Cursor().Index()
	sym := m.pal.highlight
	pad := strings.Repeat(" ", xansi.StringWidth(sym))

	lines := make([]string, len(rows))
	for i, r := range rows {
		lead, st := "", m.pal.main
		if hasSel {
			lead = pad
			if i == sel {
				lead, st = sym, m.pal.selected
			}
		}
		lines[i] = st.Render(truncate(lead+r.Label, width))
	}
	return strings.Join(lines, "\n")
}

func (m appModel) inputTitle(width int) string {
	switch m.sess.Mode().(type) {
	case session.Composing:
		return titleAdd
	case session.EditingAt:
		return titleEdit
	}
	h := m.help
	h.Width = max(0, width)
	return h.ShortHelpView(m.keys.ShortHelp())
}

// inputBody shows the buffer in the input color. While typing, the tail of
// the buffer stays visible and the cursor follows it.
func (m appModel) inputBody(width int) string {
	buf := m.sess.Buffer()
	if !session.IsText(m.sess.Mode()) {
		return m.pal.input.Render(buf)
	}
	for buf != "" && xansi.StringWidth(buf)+1 > width {
		_, size := utf8.DecodeRuneInString(buf)
		buf = buf[size:]
	}
	return m.pal.input.Render(buf) + m.cursor.View()
}
