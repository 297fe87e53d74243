package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkarlsen/opboard/internal/cli/formatter"
)

func newCheckCmd(app *App, complete bool) *cobra.Command {
	use, short := "check", "Mark an aspect complete"
	if !complete {
		use, short = "uncheck", "Mark an aspect incomplete"
	}

	return &cobra.Command{
		Use:   use + " AREA CATEGORY ASPECT",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, category, aspect := args[0], args[1], args[2]

			if _, err := app.Board.Load(cmd.Context()); err != nil {
				return err
			}
			if err := app.Board.SetAspectComplete(cmd.Context(), area, category, aspect, complete); err != nil {
				return err
			}

			cat := app.Board.Board().Area(area).Category(category)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategory(area, cat))
			return nil
		},
	}
}

func newNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note AREA CATEGORY ASPECT TEXT",
		Short: "Attach a note to an aspect",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, category, aspect, text := args[0], args[1], args[2], args[3]

			if _, err := app.Board.Load(cmd.Context()); err != nil {
				return err
			}
			if err := app.Board.SetAspectNote(cmd.Context(), area, category, aspect, text); err != nil {
				return err
			}

			cat := app.Board.Board().Area(area).Category(category)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategory(area, cat))
			return nil
		},
	}
}
