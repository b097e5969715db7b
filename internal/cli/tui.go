package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/locrec/internal/app"
)

// newTUICommand creates the tui command for launching the interactive TUI.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [todo|order]",
		Short: "Launch interactive TUI",
		Long: `Launch the interactive terminal user interface.

Without an argument the screen configured by ui.default_screen is opened.
Press tab inside the TUI to switch between the to-do and order screens.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := c.AppConfig.UI.DefaultScreen
			if len(args) == 1 {
				var err error
				if screen, err = parseScreen(args[0]); err != nil {
					return err
				}
			}
			return launchTUIFunc(cmd.Context(), c, screen)
		},
	}
	return cmd
}
