package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tasktree-cli/internal/session"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfig = "TASKTREE_CONFIG"

	DefaultTickRate = 250 * time.Millisecond
)

type Config struct {
	Keys     Keys          `yaml:"keys" json:"keys"`
	Layout   Layout        `yaml:"layout" json:"layout"`
	Theme    Theme         `yaml:"theme" json:"theme"`
	TickRate time.Duration `yaml:"tick_rate" json:"tick_rate"`
}

// Keys maps each action to a chord written as a bubbletea key string.
type Keys struct {
	Quit           string `yaml:"quit" json:"quit"`
	AddTask        string `yaml:"add_task" json:"add_task"`
	DeleteTask     string `yaml:"delete_task" json:"delete_task"`
	EditTask       string `yaml:"edit_task" json:"edit_task"`
	ToggleExpand   string `yaml:"toggle_expand" json:"toggle_expand"`
	SelectNext     string `yaml:"select_next" json:"select_next"`
	SelectPrevious string `yaml:"select_previous" json:"select_previous"`
	Deselect       string `yaml:"deselect" json:"deselect"`
}

type Direction string

const (
	Vertical   Direction = "vertical"
	Horizontal Direction = "horizontal"
)

type Layout struct {
	Direction Direction `yaml:"direction" json:"direction"`
	// Constraints are percentage weights, list pane first.
	Constraints []int `yaml:"constraints" json:"constraints"`
}

type Theme struct {
	Colors Colors `yaml:"colors" json:"colors"`
	Other  Other  `yaml:"other" json:"other"`
	Icons  Icons  `yaml:"icons" json:"icons"`
	Prefix string `yaml:"prefix" json:"prefix"`
}

type Colors struct {
	MainFg  string `yaml:"main_fg" json:"main_fg"`
	InputFg string `yaml:"input_fg" json:"input_fg"`
}

type Other struct {
	HighlightMod string `yaml:"highlight_mod" json:"highlight_mod"`
}

// Icons left empty follow the terminal glyph set.
type Icons struct {
	Expanded        string `yaml:"expanded" json:"expanded"`
	Collapsed       string `yaml:"collapsed" json:"collapsed"`
	Leaf            string `yaml:"leaf" json:"leaf"`
	HighlightSymbol string `yaml:"highlight_symbol" json:"highlight_symbol"`
}

const (
	PrefixIndent = "indent"
	PrefixIcons  = "icons"
)

// HighlightMods lists the accepted highlight_mod values.
var HighlightMods = []string{"bold", "italic", "underline", "slow_blink", "rapid_blink", "reversed", "dim", "crossed_out"}

func Default() Config {
	return Config{
		Keys: Keys{
			Quit:           "q",
			AddTask:        "a",
			DeleteTask:     "x",
			EditTask:       "e",
			ToggleExpand:   "enter",
			SelectNext:     "j",
			SelectPrevious: "k",
			Deselect:       "d",
		},
		Layout: Layout{
			Direction:   Vertical,
			Constraints: []int{80, 20},
		},
		Theme: Theme{
			Colors: Colors{MainFg: "white", InputFg: "yellow"},
			Other:  Other{HighlightMod: "bold"},
			Icons:  Icons{HighlightSymbol: ">> "},
			Prefix: PrefixIndent,
		},
		TickRate: DefaultTickRate,
	}
}

// Chord returns the configured chord for a.
func (k Keys) Chord(a session.Action) string {
	switch a {
	case session.ActionQuit:
		return k.Quit
	case session.ActionAddTask:
		return k.AddTask
	case session.ActionDeleteTask:
		return k.DeleteTask
	case session.ActionEditTask:
		return k.EditTask
	case session.ActionToggleExpand:
		return k.ToggleExpand
	case session.ActionSelectNext:
		return k.SelectNext
	case session.ActionSelectPrevious:
		return k.SelectPrevious
	case session.ActionDeselect:
		return k.Deselect
	}
	return ""
}

func (k *Keys) set(a session.Action, chord string) {
	switch a {
	case session.ActionQuit:
		k.Quit = chord
	case session.ActionAddTask:
		k.AddTask = chord
	case session.ActionDeleteTask:
		k.DeleteTask = chord
	case session.ActionEditTask:
		k.EditTask = chord
	case session.ActionToggleExpand:
		k.ToggleExpand = chord
	case session.ActionSelectNext:
		k.SelectNext = chord
	case session.ActionSelectPrevious:
		k.SelectPrevious = chord
	case session.ActionDeselect:
		k.Deselect = chord
	}
}

// ResolvePath picks the config file location: the explicit flag value, then
// $TASKTREE_CONFIG, then the per-user config directory.
func ResolvePath(flagValue string) (string, error) {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv(EnvConfig)); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: locate user config dir: %w", err)
	}
	return filepath.Join(dir, "tasktree", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults; any
// other read, parse or validation failure is returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := decode(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse decodes and validates a config document on top of the defaults.
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	if err := decode(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate normalizes chords in place and rejects anything the TUI could not
// honor.
func (c *Config) Validate() error {
	seen := map[string]session.Action{}
	for _, a := range session.Actions() {
		chord, err := ParseChord(c.Keys.Chord(a))
		if err != nil {
			return fmt.Errorf("config: keys.%s: %w", a, err)
		}
		if chord == ReservedQuit {
			return fmt.Errorf("config: keys.%s: %q is reserved for quit", a, chord)
		}
		if prev, dup := seen[chord]; dup {
			return fmt.Errorf("config: keys.%s: %q already bound to %s", a, chord, prev)
		}
		seen[chord] = a
		c.Keys.set(a, chord)
	}

	switch Direction(strings.ToLower(string(c.Layout.Direction))) {
	case Vertical, Horizontal:
		c.Layout.Direction = Direction(strings.ToLower(string(c.Layout.Direction)))
	default:
		return fmt.Errorf("config: layout.direction: unknown direction %q", c.Layout.Direction)
	}
	if len(c.Layout.Constraints) != 2 {
		return fmt.Errorf("config: layout.constraints: want 2 weights, got %d", len(c.Layout.Constraints))
	}
	for i, w := range c.Layout.Constraints {
		if w <= 0 {
			return fmt.Errorf("config: layout.constraints[%d]: weight must be positive, got %d", i, w)
		}
	}

	mod := strings.ToLower(strings.TrimSpace(c.Theme.Other.HighlightMod))
	if !validHighlightMod(mod) {
		return fmt.Errorf("config: theme.other.highlight_mod: unknown modifier %q", c.Theme.Other.HighlightMod)
	}
	c.Theme.Other.HighlightMod = mod

	switch p := strings.ToLower(strings.TrimSpace(c.Theme.Prefix)); p {
	case PrefixIndent, PrefixIcons:
		c.Theme.Prefix = p
	default:
		return fmt.Errorf("config: theme.prefix: unknown prefix %q", c.Theme.Prefix)
	}

	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate: must be positive, got %s", c.TickRate)
	}
	return nil
}

func validHighlightMod(s string) bool {
	for _, m := range HighlightMods {
		if s == m {
			return true
		}
	}
	return false
}

// Marshal renders cfg as a YAML document.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
