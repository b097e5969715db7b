// Package main is the entry point for the locrec CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

// newRootCommand is replaced in tests.
var newRootCommand = cli.NewRootCommand

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The data directory decides where config and storage live, so it is
	// read before cobra parses the rest of the flags.
	container, err := app.New(cli.DataDirFromArgs(args))
	if err != nil {
		return runWithoutContainer(ctx, args, fmt.Errorf("failed to initialize: %w", err))
	}
	defer func() { _ = container.Close() }()

	rootCmd := newRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// runWithoutContainer handles cases where the data directory cannot be opened.
// This allows help and version to work; other commands return initErr.
func runWithoutContainer(ctx context.Context, args []string, initErr error) error {
	if !canRunWithoutContainer(args) {
		return initErr
	}
	rootCmd := newRootCommand(nil, version)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func canRunWithoutContainer(args []string) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "help", "completion":
		return true
	}
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--version" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
