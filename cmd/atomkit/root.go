package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/atomkit/atomkit/internal/config"
	"github.com/atomkit/atomkit/internal/logger"
	"github.com/atomkit/atomkit/internal/ui/components"
)

type rootFlags struct {
	theme     string
	themesDir string
	verbose   bool
}

// appContext bundles the services shared by every subcommand.
type appContext struct {
	log   *logger.Logger
	flags *rootFlags
}

// store builds the theme store from the resolved themes directory.
func (a *appContext) store() *config.Store {
	return config.NewStore(a.themesDir(), a.log)
}

// resolveTheme looks up the theme named by --theme.
func (a *appContext) resolveTheme() (components.Theme, error) {
	return a.store().Resolve(a.flags.theme)
}

// themesDir returns --themes-dir when set, falling back to
// $XDG_CONFIG_HOME/atomkit/themes or ~/.config/atomkit/themes.
func (a *appContext) themesDir() string {
	if a.flags.themesDir != "" {
		return a.flags.themesDir
	}
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "atomkit", "themes")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "atomkit", "themes")
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{log: log, flags: flags}

	cmd := &cobra.Command{
		Use:           "atomkit",
		Short:         "Atomkit showcases a theme-aware terminal component kit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				app.log = app.log.WithLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "default", "Theme to render with")
	cmd.PersistentFlags().StringVar(&flags.themesDir, "themes-dir", "", "Directory holding custom theme YAML files")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newThemesCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
