package cli_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/emetricx/internal/cli"
	"github.com/rshade/emetricx/pkg/version"
)

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := cli.NewRootCmd("test")

	want := []string{"wizard", "estimate", "totals", "report", "chart", "export", "state", "config", "version"}
	for _, name := range want {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	for _, name := range []string{"debug", "state-dir", "ephemeral"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "calculate")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitOK},
		{"usage", &cli.UsageError{Err: errors.New("bad flag")}, cli.ExitUsage},
		{"wrapped usage", errors.Join(errors.New("ctx"), &cli.UsageError{Err: errors.New("x")}), cli.ExitUsage},
		{"runtime", errors.New("disk full"), cli.ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCodeFor(tt.err))
		})
	}
}

func TestVersion(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "emetricx test")

	out, _, err = execute(t, "version", "--output", "json")
	require.NoError(t, err)
	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "test", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestWizard_RequiresTerminal(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "wizard")
	require.ErrorIs(t, err, cli.ErrNotInteractive)
	assert.Equal(t, cli.ExitError, cli.ExitCodeFor(err))
}
