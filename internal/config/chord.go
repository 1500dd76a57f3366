package config

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReservedQuit always quits, whatever the bindings say.
const ReservedQuit = "ctrl+c"

var namedKeys = map[string]string{
	"enter":     "enter",
	"return":    "enter",
	"esc":       "esc",
	"escape":    "esc",
	"tab":       "tab",
	"space":     " ",
	"backspace": "backspace",
	"delete":    "delete",
	"del":       "delete",
	"insert":    "insert",
	"up":        "up",
	"down":      "down",
	"left":      "left",
	"right":     "right",
	"home":      "home",
	"end":       "end",
	"pgup":      "pgup",
	"pageup":    "pgup",
	"pgdown":    "pgdown",
	"pagedown":  "pgdown",
}

func init() {
	for i := 1; i <= 12; i++ {
		k := fmt.Sprintf("f%d", i)
		namedKeys[k] = k
	}
}

// ParseChord normalizes a chord such as "Ctrl+K", "alt+enter", "shift+a" or
// "space" to the string bubbletea reports for that key.
func ParseChord(s string) (string, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		if s == " " {
			return " ", nil
		}
		return "", fmt.Errorf("empty chord")
	}

	var ctrl, alt, shift bool
	var key string
	var mods []string
	switch {
	case raw == "+":
		key = "+"
	case strings.HasSuffix(raw, "++"):
		// "ctrl++" binds the plus key itself.
		key = "+"
		mods = strings.Split(strings.TrimSuffix(raw, "++"), "+")
	default:
		parts := strings.Split(raw, "+")
		key = parts[len(parts)-1]
		mods = parts[:len(parts)-1]
	}
	if key == "" {
		return "", fmt.Errorf("missing key in %q", s)
	}
	for _, mod := range mods {
		switch strings.ToLower(strings.TrimSpace(mod)) {
		case "ctrl", "control":
			ctrl = true
		case "alt", "meta", "option":
			alt = true
		case "shift":
			shift = true
		default:
			return "", fmt.Errorf("unknown modifier %q in %q", mod, s)
		}
	}

	var name string
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		switch {
		case ctrl && shift:
			return "", fmt.Errorf("ctrl+shift is not supported for %q", s)
		case ctrl:
			lr := unicode.ToLower(r)
			if lr < 'a' || lr > 'z' {
				return "", fmt.Errorf("ctrl is only supported with letters, got %q", s)
			}
			name = "ctrl+" + string(lr)
		case shift:
			name = string(unicode.ToUpper(r))
		default:
			name = key
		}
	} else {
		n, ok := namedKeys[strings.ToLower(key)]
		if !ok {
			return "", fmt.Errorf("unknown key %q in %q", key, s)
		}
		switch {
		case ctrl && shift:
			name = "ctrl+shift+" + n
		case ctrl:
			name = "ctrl+" + n
		case shift:
			name = "shift+" + n
		default:
			name = n
		}
	}
	if alt {
		name = "alt+" + name
	}
	return name, nil
}

// DisplayChord renders a normalized chord for help text.
func DisplayChord(chord string) string {
	switch chord {
	case " ":
		return "space"
	case "alt+ ":
		return "alt+space"
	}
	return chord
}
