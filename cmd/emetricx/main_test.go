package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/emetricx/internal/cli"
	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/pkg/version"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvLogLevel, "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		require.NotNil(t, root)
		assert.Equal(t, "emetricx", root.Use)
	})
}

func TestRun(t *testing.T) {
	isolate(t)

	t.Run("success", func(t *testing.T) {
		err := run(context.Background(), []string{"estimate", "--fuel", "2", "--output", "json"})
		require.NoError(t, err)
		assert.Equal(t, 0, cli.ExitCodeFor(err))
	})

	t.Run("unknown flag is a usage error", func(t *testing.T) {
		err := run(context.Background(), []string{"estimate", "--bogus"})
		require.Error(t, err)
		assert.Equal(t, 2, cli.ExitCodeFor(err))
	})

	t.Run("unknown command is a usage error", func(t *testing.T) {
		err := run(context.Background(), []string{"launch"})
		require.Error(t, err)
		assert.Equal(t, 2, cli.ExitCodeFor(err))
	})
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"generic", errors.New("disk full"), 1},
		{"usage", &cli.UsageError{Err: errors.New("bad flag")}, 2},
		{"wrapped usage", fmt.Errorf("outer: %w", &cli.UsageError{Err: errors.New("bad")}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCodeFor(tt.err))
		})
	}
}
