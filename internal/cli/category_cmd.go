package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rkarlsen/opboard/internal/cli/formatter"
	"github.com/rkarlsen/opboard/internal/domain"
	"github.com/rkarlsen/opboard/internal/service"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Edit or add categories",
	}
	cmd.AddCommand(newCategoryEditCmd(app), newCategoryAddCmd(app))
	return cmd
}

func newCategoryEditCmd(app *App) *cobra.Command {
	var (
		title       string
		description string
		status      string
		hours       int
	)

	cmd := &cobra.Command{
		Use:   "edit AREA CATEGORY",
		Short: "Edit category title, description, status or hours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, category := args[0], args[1]

			if _, err := app.Board.Load(cmd.Context()); err != nil {
				return err
			}

			edit := service.CategoryEdit{}
			if cmd.Flags().Changed("title") {
				edit.Title = &title
			}
			if cmd.Flags().Changed("description") {
				edit.Description = &description
			}
			if cmd.Flags().Changed("status") {
				s := domain.CategoryStatus(status)
				edit.Status = &s
			}
			if cmd.Flags().Changed("hours") {
				edit.ActualHours = &hours
			}

			// No flags: fall back to an interactive form on a terminal.
			if edit == (service.CategoryEdit{}) {
				if !isatty.IsTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("no edit flags given and stdin is not a terminal")
				}
				var err error
				edit, err = runCategoryEditForm(app, area, category)
				if err != nil {
					return err
				}
			}

			if err := app.Board.EditCategory(cmd.Context(), area, category, edit); err != nil {
				return err
			}

			cat := app.Board.Board().Area(area).Category(category)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategory(area, cat))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Display title")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	cmd.Flags().StringVar(&status, "status", "", "Status: not_started|in_progress|complete")
	cmd.Flags().IntVar(&hours, "hours", 0, "Actual hours spent")

	return cmd
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var aspects []string

	cmd := &cobra.Command{
		Use:   "add AREA NAME",
		Short: "Add a category under an existing or new area",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, name := args[0], args[1]

			if _, err := app.Board.Load(cmd.Context()); err != nil {
				return err
			}

			cat, err := app.Board.CreateCategory(cmd.Context(), area, name, aspects)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategory(area, cat))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&aspects, "aspect", nil,
		"Applicable aspect, repeatable (e.g. --aspect Process --aspect Technology)")

	return cmd
}

// runCategoryEditForm collects the edit fields interactively, prefilled from
// the current category.
func runCategoryEditForm(app *App, area, category string) (service.CategoryEdit, error) {
	ar := app.Board.Board().Area(area)
	if ar == nil {
		return service.CategoryEdit{}, fmt.Errorf("area %q not found", area)
	}
	cat := ar.Category(category)
	if cat == nil {
		return service.CategoryEdit{}, fmt.Errorf("category %q not found under %q", category, area)
	}

	title := cat.Title
	description := cat.Description
	status := string(cat.Status)
	hoursStr := ""
	if cat.ActualHours != nil {
		hoursStr = strconv.Itoa(*cat.ActualHours)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title),
			huh.NewInput().Title("Description").Value(&description),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Not Started", string(domain.StatusNotStarted)),
					huh.NewOption("In Progress", string(domain.StatusInProgress)),
					huh.NewOption("Complete", string(domain.StatusComplete)),
				).
				Value(&status),
			huh.NewInput().Title("Actual Hours").Value(&hoursStr).Validate(validateOptionalInt),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return service.CategoryEdit{}, err
	}

	st := domain.CategoryStatus(status)
	edit := service.CategoryEdit{
		Title:       &title,
		Description: &description,
		Status:      &st,
	}
	if strings.TrimSpace(hoursStr) != "" {
		h, _ := strconv.Atoi(strings.TrimSpace(hoursStr))
		edit.ActualHours = &h
	}
	return edit, nil
}

func validateOptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative integer")
	}
	return nil
}
