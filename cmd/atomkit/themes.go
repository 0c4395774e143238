package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemesCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List built-in and configured themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range app.store().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
