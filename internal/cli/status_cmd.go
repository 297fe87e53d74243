package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkarlsen/opboard/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show overall and per-area completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Board.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if warning := formatter.FormatDroppedKeys(keyStrings(result.DroppedKeys)); warning != "" {
				fmt.Fprint(out, warning)
			}
			fmt.Fprintln(out, formatter.FormatStatus(result.Board))
			return nil
		},
	}
}
