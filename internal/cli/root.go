// Package cli wires the cobra commands onto the board service.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rkarlsen/opboard/internal/service"
)

// App holds the service interfaces used by CLI commands.
type App struct {
	Board service.BoardService
}

// NewRootCmd creates the top-level "opboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "opboard",
		Short: "Business-function completion dashboard",
	}

	root.AddCommand(
		newStatusCmd(app),
		newShowCmd(app),
		newCheckCmd(app, true),
		newCheckCmd(app, false),
		newNoteCmd(app),
		newCategoryCmd(app),
		newBoardCmd(app),
	)

	return root
}
