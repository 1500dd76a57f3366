package format

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// MarkdownTable renders a GitHub-style table. Pipes in cells are escaped.
func MarkdownTable(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, c := range cells {
			b.WriteString(" ")
			b.WriteString(strings.ReplaceAll(c, "|", `\|`))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(sep)
	for _, r := range rows {
		writeRow(r)
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal behind w. Output that isn't a
// color terminal gets the plain notty style.
func RenderMarkdown(w io.Writer, md string, width int) error {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		// Avoid WithAutoStyle(): it can block waiting on terminal queries in some setups.
		glamour.WithStandardStyle(MarkdownStyle(w)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// MarkdownStyle picks a glamour style name.
//
// Priority:
// 1) TASKTREE_MD_STYLE=light|dark|notty|ascii
// 2) notty when w is not a color terminal
// 3) TASKTREE_TUI_THEME=light|dark
// 4) COLORFGBG heuristic, then Lip Gloss background detection
func MarkdownStyle(w io.Writer) string {
	switch v := strings.ToLower(strings.TrimSpace(os.Getenv("TASKTREE_MD_STYLE"))); v {
	case styles.LightStyle, styles.DarkStyle, styles.NoTTYStyle, styles.AsciiStyle:
		return v
	}
	if termenv.NewOutput(w).EnvColorProfile() == termenv.Ascii {
		return styles.NoTTYStyle
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKTREE_TUI_THEME"))) {
	case "light":
		return styles.LightStyle
	case "dark":
		return styles.DarkStyle
	}
	// COLORFGBG is often "fg;bg" (e.g. "15;0" => dark bg).
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			// Common xterm palette: 0-6 dark colors, 7-15 light colors.
			if bg >= 7 {
				return styles.LightStyle
			}
			return styles.DarkStyle
		}
	}
	if lipgloss.HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}
