package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkarlsen/opboard/internal/cli/formatter"
	"github.com/rkarlsen/opboard/internal/snapshot"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [area]",
		Short: "Show the category checklist for one area, or all areas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Board.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				area := result.Board.Area(args[0])
				if area == nil {
					return fmt.Errorf("area %q not found", args[0])
				}
				fmt.Fprintln(out, formatter.FormatArea(area))
				return nil
			}

			for i := range result.Board.Areas {
				fmt.Fprintln(out, formatter.FormatArea(&result.Board.Areas[i]))
			}
			return nil
		},
	}
}

func keyStrings(keys []snapshot.Key) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.String())
	}
	return out
}
