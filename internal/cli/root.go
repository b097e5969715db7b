// Package cli provides the command-line interface for locrec.
package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/tui"
)

// Command group IDs.
const (
	groupRecords = "records"
	groupSetup   = "setup"
)

// DataDirFlag is the persistent flag selecting the data directory.
const DataDirFlag = "data-dir"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for locrec.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:   "locrec",
		Short: "Local to-do and order records",
		Long: `locrec keeps a to-do list and an order list on this machine.

Each list is stored as one JSON value in a local key-value store
(a JSON file, a SQLite database or a git repository). Running locrec
without a subcommand opens the terminal UI on the configured screen.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. help without a usable data dir)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return cmd.Help()
			}
			return launchTUIFunc(cmd.Context(), c, c.AppConfig.UI.DefaultScreen)
		},
	}

	root.PersistentFlags().StringVar(&dataDir, DataDirFlag, "", "Data directory (default: $LOCREC_DATA_DIR or $XDG_DATA_HOME/locrec)")

	root.AddGroup(
		&cobra.Group{ID: groupRecords, Title: "Records:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	todoCmd := newTodoCommand(c)
	todoCmd.GroupID = groupRecords

	orderCmd := newOrderCommand(c)
	orderCmd.GroupID = groupRecords

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupRecords

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupRecords

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupRecords

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		todoCmd,
		orderCmd,
		exportCmd,
		historyCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

// DataDirFromArgs returns the value of --data-dir in args, or "".
// The container is built before cobra parses flags, so main reads it directly.
func DataDirFromArgs(args []string) string {
	flag := "--" + DataDirFlag
	for i, arg := range args {
		if arg == "--" {
			return ""
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, flag+"="); ok {
			return v
		}
	}
	return ""
}

// parseScreen maps a screen argument to a screen name.
func parseScreen(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case domain.ScreenTodo, "todos":
		return domain.ScreenTodo, nil
	case domain.ScreenOrder, "orders":
		return domain.ScreenOrder, nil
	}
	return "", fmt.Errorf("%w: %q (expected todo or order)", domain.ErrUnknownScreen, s)
}

// listKey maps a list argument to its storage key.
func listKey(s string) (string, error) {
	screen, err := parseScreen(s)
	if err != nil {
		return "", err
	}
	if screen == domain.ScreenOrder {
		return domain.OrderListKey, nil
	}
	return domain.TodoListKey, nil
}

// launchTUI runs the terminal UI on the given screen until the user quits.
func launchTUI(ctx context.Context, c *app.Container, screen string) error {
	model := tui.New(c, screen)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
