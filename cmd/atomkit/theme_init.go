package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/atomkit/atomkit/internal/config"
	"github.com/atomkit/atomkit/internal/ui/components"
)

var (
	themeNameRe = regexp.MustCompile(`^[a-z0-9_-]+$`)
	hexColourRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

func newThemeCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage custom themes",
	}
	cmd.AddCommand(newThemeInitCmd(app))
	return cmd
}

// newThemeInitCmd scaffolds a theme YAML file. The form asks for a name
// and the primary colours; every other slot is seeded from the built-in
// default so the file validates out of the box.
func newThemeInitCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively scaffold a theme YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				name         string
				primaryLight = "#5e81ac"
				primaryDark  = "#81a1c1"
				confirmed    bool
			)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Theme name").
						Description("Lowercase letters, digits, hyphens, underscores").
						Validate(func(s string) error {
							if !themeNameRe.MatchString(s) {
								return fmt.Errorf("invalid theme name")
							}
							return nil
						}).
						Value(&name),
					huh.NewInput().
						Title("Primary colour (light terminals)").
						Validate(validateHex).
						Value(&primaryLight),
					huh.NewInput().
						Title("Primary colour (dark terminals)").
						Validate(validateHex).
						Value(&primaryDark),
					huh.NewConfirm().
						Title("Write the theme file?").
						Value(&confirmed),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
			if !confirmed {
				return nil
			}

			file := scaffoldThemeFile(name, primaryLight, primaryDark)
			if err := config.ValidateThemeFile(file); err != nil {
				return err
			}

			dir := app.themesDir()
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			path := filepath.Join(dir, name+".yaml")
			data, err := yaml.Marshal(file)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}

			app.log.WithFields(map[string]any{"theme": name, "path": path}).Info("theme file written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
}

func validateHex(s string) error {
	if !hexColourRe.MatchString(s) {
		return fmt.Errorf("expected a colour like #5e81ac")
	}
	return nil
}

// scaffoldThemeFile seeds every slot from the built-in default palette and
// overrides the primary base with the chosen colours.
func scaffoldThemeFile(name, primaryLight, primaryDark string) *config.ThemeFile {
	palette := components.DefaultTheme().Palette

	file := &config.ThemeFile{
		Name: name,
		Palette: config.PaletteFile{
			Primary:   slotFile(palette.Primary),
			Secondary: slotFile(palette.Secondary),
			Surface:   slotFile(palette.Surface),
			Success:   slotFile(palette.Success),
			Warning:   slotFile(palette.Warning),
			Danger:    slotFile(palette.Danger),
			Info:      slotFile(palette.Info),
			Neutral:   slotFile(palette.Neutral),
		},
	}
	file.Palette.Primary.Base = config.ColourFile{Light: primaryLight, Dark: primaryDark}
	return file
}

func slotFile(set components.ColourSet) config.SlotFile {
	return config.SlotFile{
		Base:   colourFile(set.Base),
		OnBase: colourFile(set.OnBase),
		Muted:  colourFile(set.Muted),
		Accent: colourFile(set.Accent),
	}
}

func colourFile(colour lipgloss.AdaptiveColor) config.ColourFile {
	return config.ColourFile{Light: colour.Light, Dark: colour.Dark}
}
