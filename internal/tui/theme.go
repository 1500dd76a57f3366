package tui

import (
	"os"
	"strconv"
	"strings"

	"tasktree-cli/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const envTheme = "TASKTREE_TUI_THEME"

// Theme/palette helpers.
//
// The configured colors apply to task text and the input buffer. Chrome
// (borders, help separators) uses adaptive colors so it stays readable on
// both light and dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted  lipgloss.TerminalColor = ac("240", "243")
	colorBorder lipgloss.TerminalColor = ac("250", "243")
	colorTitle  lipgloss.TerminalColor = ac("235", "252")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// namedColors maps color names to ANSI indexes.
var namedColors = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"grey":         "7",
	"darkgray":     "8",
	"darkgrey":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

// parseColor resolves a configured color. Names map to ANSI indexes; hex and
// ANSI numbers pass through. Anything else is handed to lipgloss verbatim and
// renders with the terminal default.
func parseColor(s string) lipgloss.TerminalColor {
	v := strings.TrimSpace(s)
	switch strings.ToLower(v) {
	case "", "reset", "default":
		return lipgloss.NoColor{}
	}
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(v))
	if idx, ok := namedColors[key]; ok {
		return lipgloss.Color(idx)
	}
	return lipgloss.Color(v)
}

// highlightStyle applies a configured highlight_mod to st.
func highlightStyle(st lipgloss.Style, mod string) lipgloss.Style {
	switch mod {
	case "bold":
		return st.Bold(true)
	case "italic":
		return st.Italic(true)
	case "underline":
		return st.Underline(true)
	case "slow_blink", "rapid_blink":
		return st.Blink(true)
	case "reversed":
		return st.Reverse(true)
	case "dim":
		return st.Faint(true)
	case "crossed_out":
		return st.Strikethrough(true)
	}
	return st
}

type palette struct {
	main      lipgloss.Style
	input     lipgloss.Style
	selected  lipgloss.Style
	border    lipgloss.Style
	title     lipgloss.Style
	highlight string
}

func newPalette(th config.Theme) palette {
	main := lipgloss.NewStyle().Foreground(parseColor(th.Colors.MainFg))
	return palette{
		main:      main,
		input:     lipgloss.NewStyle().Foreground(parseColor(th.Colors.InputFg)),
		selected:  highlightStyle(main, th.Other.HighlightMod),
		border:    lipgloss.NewStyle().Foreground(colorBorder),
		title:     lipgloss.NewStyle().Foreground(colorTitle).Bold(true),
		highlight: th.Icons.HighlightSymbol,
	}
}

// applyColorProfilePreference sets the Lip Gloss color profile. NO_COLOR
// wins; otherwise the detected profile is raised to what TERM or COLORTERM
// advertise. CLICOLOR is ignored here, it is meant for plain CLI output.
func applyColorProfilePreference() {
	lipgloss.SetColorProfile(colorProfile(termenv.ColorProfile()))
}

func colorProfile(detected termenv.Profile) termenv.Profile {
	if envSet("NO_COLOR") {
		return termenv.Ascii
	}
	if detected == termenv.Ascii {
		return detected
	}
	colorterm := envLower("COLORTERM")
	switch {
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"):
		return termenv.TrueColor
	case strings.Contains(envLower("TERM"), "256color") && detected == termenv.ANSI:
		return termenv.ANSI256
	}
	return detected
}

// applyThemePreference overrides Lip Gloss's dark-background guess from
// TASKTREE_TUI_THEME (light|dark) or COLORFGBG. With neither, Lip Gloss
// queries the terminal itself.
func applyThemePreference() {
	if dark, ok := darkBackground(); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

func darkBackground() (dark, ok bool) {
	switch envLower(envTheme) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	// COLORFGBG is "fg;bg"; xterm indexes 0-6 are dark.
	if v := envLower("COLORFGBG"); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg < 7, true
		}
	}
	return false, false
}

func envSet(name string) bool { return envLower(name) != "" }

func envLower(name string) string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(name)))
}
