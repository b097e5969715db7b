package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/cli"
)

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: true},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "help shorthand on subcommand", args: []string{"order", "add", "-h"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "help subcommand", args: []string{"help", "todo"}, want: true},
		{name: "completion", args: []string{"completion", "bash"}, want: true},
		{name: "list command", args: []string{"todo", "list"}, want: false},
		{name: "help after terminator", args: []string{"todo", "add", "--", "--help"}, want: false},
		{name: "data dir only", args: []string{"--data-dir", "/tmp/x"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutContainer(tt.args))
		})
	}
}

func TestRunWithoutContainer_ReturnsInitError(t *testing.T) {
	initErr := errors.New("data dir unavailable")

	err := runWithoutContainer(context.Background(), []string{"todo", "list"}, initErr)

	assert.ErrorIs(t, err, initErr)
}

func TestRunWithoutContainer_NoArgsShowsHelp(t *testing.T) {
	originalRoot := newRootCommand
	t.Cleanup(func() { newRootCommand = originalRoot })

	var out bytes.Buffer
	newRootCommand = func(c *app.Container, v string) *cobra.Command {
		cmd := cli.NewRootCommand(c, v)
		cmd.SetOut(&out)
		return cmd
	}

	require.NoError(t, runWithoutContainer(context.Background(), []string{}, errors.New("init")))
	assert.Contains(t, out.String(), "locrec keeps a to-do list and an order list")
}

func TestRun_UsesDataDirFlag(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LOCREC_STORAGE_BACKEND", "")

	originalRoot := newRootCommand
	t.Cleanup(func() { newRootCommand = originalRoot })

	var got *app.Container
	newRootCommand = func(c *app.Container, v string) *cobra.Command {
		got = c
		cmd := cli.NewRootCommand(c, v)
		cmd.SetOut(&bytes.Buffer{})
		return cmd
	}

	require.NoError(t, run([]string{"--data-dir", dir, "todo", "list"}))
	require.NotNil(t, got)
	assert.Equal(t, dir, got.Config.DataDir)
}
