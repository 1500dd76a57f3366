package cli

import (
	"fmt"

	"tasktree-cli/internal/config"
	"tasktree-cli/internal/format"
	"tasktree-cli/internal/session"

	"github.com/spf13/cobra"
)

type keyRow struct {
	Action string `json:"action" yaml:"action"`
	Chord  string `json:"chord" yaml:"chord"`
	Help   string `json:"help" yaml:"help"`
}

func keyRows(k config.Keys) []keyRow {
	rows := make([]keyRow, 0, len(session.Actions())+1)
	for _, a := range session.Actions() {
		rows = append(rows, keyRow{Action: a.String(), Chord: k.Chord(a), Help: a.Help()})
	}
	return append(rows, keyRow{Action: "force_quit", Chord: config.ReservedQuit, Help: "quit from any mode"})
}

func keysMarkdown(rows []keyRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{"`" + config.DisplayChord(r.Chord) + "`", r.Help, r.Action})
	}
	return "# Key bindings\n\n" +
		format.MarkdownTable([]string{"Key", "Does", "Config key"}, cells) +
		"\nWhile adding or editing, keys type text: `enter` submits, `esc` cancels, `backspace` deletes.\n"
}

func newKeysCmd(app *App) *cobra.Command {
	var outFormat string
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the active key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadConfig(app)
			if err != nil {
				return err
			}
			rows := keyRows(cfg.Keys)
			switch outFormat {
			case "", "markdown", "md":
				md := keysMarkdown(rows)
				if raw {
					_, err := fmt.Fprint(cmd.OutOrStdout(), md)
					return err
				}
				return format.RenderMarkdown(cmd.OutOrStdout(), md, width)
			case "json", "yaml":
				return writeOut(cmd, app, map[string]any{"data": rows}, outFormat)
			default:
				return formatError{format: outFormat, allowed: []string{"markdown", "json", "yaml"}}
			}
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", "markdown", "Output format (markdown|json|yaml)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown instead of rendering it")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered markdown")

	return cmd
}
