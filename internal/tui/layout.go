package tui

import (
	"strings"

	"tasktree-cli/internal/config"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall. This makes split-pane rendering stable when using lipgloss.JoinHorizontal.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		ln := truncate(lines[i], width)
		if w := xansi.StringWidth(ln); w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}

// truncate cuts s to width columns, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	// Fast path: cut huge lines before measuring them.
	if len(s) > 8192 {
		s = xansi.Cut(s, 0, width+1)
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return xansi.Cut(s, 0, 1)
	}
	return xansi.Truncate(s, width, glyphEllipsis())
}

type rect struct {
	width, height int
}

// splitPanes divides the screen between the list and input panes by the
// configured weights. Each pane keeps room for its border.
func splitPanes(l config.Layout, width, height int) (list, input rect) {
	a, b := 1, 1
	if len(l.Constraints) == 2 && l.Constraints[0] > 0 && l.Constraints[1] > 0 {
		a, b = l.Constraints[0], l.Constraints[1]
	}
	const minPane = 3
	if l.Direction == config.Horizontal {
		lw := width * a / (a + b)
		lw = clampInt(lw, minPane, max(minPane, width-minPane))
		return rect{lw, height}, rect{max(0, width-lw), height}
	}
	lh := height * a / (a + b)
	lh = clampInt(lh, minPane, max(minPane, height-minPane))
	return rect{width, lh}, rect{width, max(0, height-lh)}
}

func joinPanes(d config.Direction, list, input string) string {
	if d == config.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, list, input)
	}
	return lipgloss.JoinVertical(lipgloss.Left, list, input)
}

// renderBox draws body inside a border of r's size with title centered in
// the top edge.
func renderBox(r rect, title, body string, p palette) string {
	if r.width < 2 || r.height < 2 {
		return normalizePane("", r.width, r.height)
	}
	b := glyphBorder()
	innerW, innerH := r.width-2, r.height-2

	top := strings.Repeat(b.Top, innerW)
	if title != "" && innerW > 2 {
		t := " " + truncate(title, innerW-2) + " "
		tw := xansi.StringWidth(t)
		left := (innerW - tw) / 2
		right := innerW - tw - left
		top = p.border.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
			p.title.Render(t) +
			p.border.Render(strings.Repeat(b.Top, right)+b.TopRight)
	} else {
		top = p.border.Render(b.TopLeft + top + b.TopRight)
	}

	lines := strings.Split(normalizePane(body, innerW, innerH), "\n")
	out := make([]string, 0, r.height)
	out = append(out, top)
	side := p.border.Render(b.Left)
	sideR := p.border.Render(b.Right)
	for _, ln := range lines {
		out = append(out, side+ln+sideR)
	}
	out = append(out, p.border.Render(b.BottomLeft+strings.Repeat(b.Bottom, innerW)+b.BottomRight))
	return strings.Join(out, "\n")
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
