package cli

import (
	"os"
	"strings"

	"tasktree-cli/internal/config"
	"tasktree-cli/internal/format"
	"tasktree-cli/internal/tui"

	"github.com/spf13/cobra"
)

const envDebugLog = "TASKTREE_DEBUG_LOG"

type App struct {
	ConfigPath string
	DebugLog   string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tasktree",
		Short:        "Keyboard-driven task tree for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  tasktree

  # Show the active key bindings
  tasktree keys

  # Start from the default configuration
  tasktree config default > "$(tasktree config path)"
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr(config.EnvConfig, ""), "Path to the YAML config file")
	cmd.PersistentFlags().StringVar(&app.DebugLog, "debug-log", envOr(envDebugLog, ""), "Write debug logs to this file")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newKeysCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	path, cfg, err := loadConfig(app)
	if err != nil {
		return err
	}
	logger, closer, err := tui.OpenLog(app.DebugLog)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting", "config", path, "tick_rate", cfg.TickRate.String())
	err = tui.Run(*cfg, logger)
	if err != nil {
		logger.Error("exit", "err", err)
	}
	return err
}

func loadConfig(app *App) (string, *config.Config, error) {
	path, err := config.ResolvePath(app.ConfigPath)
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return path, nil, err
	}
	return path, cfg, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any, f string) error {
	return format.Write(cmd.OutOrStdout(), v, f, app.PrettyJSON)
}
