package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tasktree-cli/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive program and blocks until the user quits.
func Run(cfg config.Config, logger *slog.Logger, opts ...tea.ProgramOption) error {
	applyGlyphPreference()
	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(cfg, logger)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// OpenLog returns a debug logger writing to path. The terminal belongs to the
// program, so with no path logs are discarded.
func OpenLog(path string) (*slog.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, "tasktree")
	if err != nil {
		return nil, nil, fmt.Errorf("tui: open debug log %s: %w", path, err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
