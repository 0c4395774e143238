package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/atomkit/atomkit/internal/icons"
	"github.com/atomkit/atomkit/internal/option"
	"github.com/atomkit/atomkit/internal/tui/picker"
	"github.com/atomkit/atomkit/internal/tui/sortpicker"
)

type pickFlags struct {
	multi bool
	sort  bool
	title string
}

func newPickCmd(app *appContext) *cobra.Command {
	flags := &pickFlags{}

	cmd := &cobra.Command{
		Use:   "pick [options...]",
		Short: "Run the interactive picker over the given options",
		Long: "Run the interactive picker. Each argument is an option, either a plain\n" +
			"label or an id=label pair. The chosen ids are printed one per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			options := parsePickArgs(args)
			if len(options) == 0 {
				return fmt.Errorf("at least one option is required")
			}

			theme, err := app.resolveTheme()
			if err != nil {
				return err
			}

			if flags.sort {
				model := sortpicker.New(options, option.SortState{}).
					WithTheme(theme).
					WithTitle(flags.title)
				final, err := tea.NewProgram(model).Run()
				if err != nil {
					return err
				}
				result := final.(sortpicker.Model)
				if result.Cancelled() || result.State().SelectedID == "" {
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", result.State().SelectedID, result.State().Direction)
				return nil
			}

			mode := option.ModeSingle
			if flags.multi {
				mode = option.ModeMulti
			}

			model := picker.New(options, nil, mode).
				WithTheme(theme).
				WithIcons(icons.Default(app.log)).
				WithTitle(flags.title)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}
			result := final.(picker.Model)
			if result.Cancelled() {
				return nil
			}
			for _, id := range result.Selection() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flags.multi, "multi", "m", false, "Allow selecting multiple options")
	cmd.Flags().BoolVar(&flags.sort, "sort", false, "Pick a sort column and direction instead")
	cmd.Flags().StringVar(&flags.title, "title", "", "Heading shown above the picker")

	return cmd
}

// parsePickArgs turns CLI arguments into options. "id=Label" sets both
// fields; a bare word is used for each.
func parsePickArgs(args []string) []option.Option {
	options := make([]option.Option, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		id, label, found := strings.Cut(arg, "=")
		if !found {
			label = id
		}
		options = append(options, option.Option{ID: id, Label: label})
	}
	return options
}
