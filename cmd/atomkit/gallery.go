package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomkit/atomkit/internal/icons"
	"github.com/atomkit/atomkit/internal/option"
	"github.com/atomkit/atomkit/internal/ui/components"
	"github.com/atomkit/atomkit/pkg/errors"
)

const galleryFallbackWidth = 80

func newGalleryCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Render a showcase of every component in the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := app.resolveTheme()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderGallery(theme, galleryWidth(), app))
			return nil
		},
	}
}

// galleryWidth sizes the showcase to the terminal, falling back to a fixed
// width when stdout is not a TTY.
func galleryWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return galleryFallbackWidth
	}
	return width
}

func renderGallery(theme components.Theme, width int, app *appContext) string {
	ctx := components.DefaultContext().WithTheme(theme).WithMaxWidth(width)
	registry := icons.Default(app.log)

	fruit := []option.Option{
		{ID: "apples", Label: "Apples", Icon: "check"},
		{ID: "bananas", Label: "Bananas"},
		{ID: "cherries", Label: "Cherries", Description: "Out of season", Disabled: true},
	}
	selection := []string{"apples"}

	stack := components.VStack(
		components.NewHeader("Atomkit gallery").WithSubtitle("theme: "+theme.Name),
		components.HorizontalDivider().WithWidth(width),

		components.SubtitleText("Typography"),
		components.TitleText("Title"),
		components.SubtitleText("Subtitle"),
		components.NewText("Body text"),
		components.CaptionText("Caption text"),
		components.CodeText("atomkit gallery --theme dark"),

		components.DashedDivider().WithWidth(width),
		components.SubtitleText("Buttons"),
		components.HStack(
			components.PrimaryButton("Primary"),
			components.SecondaryButton("Secondary"),
			components.DangerButton("Danger"),
			components.GhostButton("Ghost"),
			components.PrimaryButton("Disabled").WithDisabled(true),
		).WithGap(1),

		components.DashedDivider().WithWidth(width),
		components.SubtitleText("Chips"),
		components.NewChipGroup(fruit, selection).
			WithIcons(registry).
			WithRemovable(true),

		components.DashedDivider().WithWidth(width),
		components.SubtitleText("Option list"),
		components.NewOptionList(fruit, selection, option.ModeMulti).
			WithCursor(1).
			WithIcons(registry),

		components.DashedDivider().WithWidth(width),
		components.SubtitleText("Fields"),
		components.NewField("Name", components.NewText("Ada Lovelace")).
			WithHelper("As printed on the badge"),
		components.NewField("Age", components.NewText("200")).
			WithError(errors.NewRuleError("Maximum value is 150")),

		components.DashedDivider().WithWidth(width),
		components.SubtitleText("Toggles"),
		components.NewToggle(true).WithLabel("Notifications"),
		components.NewToggle(false).WithLabel("Telemetry"),

		components.DashedDivider().WithWidth(width),
		components.NewCard(
			components.NewText("Cards frame related content with a border and padding."),
		).WithTitle("Card"),
	).WithGap(1)

	return stack.ViewWithContext(ctx)
}
