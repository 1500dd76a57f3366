package cli

import (
	"fmt"

	"tasktree-cli/internal/docs"
	"tasktree-cli/internal/format"

	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show documentation topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"data": map[string]any{"topics": docs.Topics()}}, "json")
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return errNotFound("docs topic", fmt.Sprintf("%q (run `tasktree docs` to list topics)", topic))
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return format.RenderMarkdown(cmd.OutOrStdout(), body, width)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered markdown")

	return cmd
}
