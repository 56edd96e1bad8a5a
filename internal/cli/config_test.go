package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/emetricx/internal/cli"
	"github.com/rshade/emetricx/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, cli.ExitError, cli.ExitCodeFor(err))

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigSetGet(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "config", "set", config.KeyOutputFormat, "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Set output.default_format = json")

	config.ResetGlobalConfigForTest()
	out, _, err = execute(t, "config", "get", config.KeyOutputFormat)
	require.NoError(t, err)
	assert.Equal(t, "json\n", out)

	config.ResetGlobalConfigForTest()
	out, _, err = execute(t, "estimate", "--waste", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"estimate": "1.70"`, "saved default format applies")
}

func TestConfigSet_Invalid(t *testing.T) {
	home := setupCLITest(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "set", "output.colour", "red"}},
		{"bad format", []string{"config", "set", config.KeyOutputFormat, "yaml"}},
		{"bad precision", []string{"config", "set", config.KeyOutputPrecision, "two"}},
		{"missing value", []string{"config", "set", config.KeyOutputFormat}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
		})
	}

	_, err := os.Stat(filepath.Join(home, "config.yaml"))
	assert.True(t, os.IsNotExist(err), "invalid values are never saved")
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "config", "get", "nope")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestConfigList(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "config", "list")
	require.NoError(t, err)
	for _, k := range config.Keys {
		assert.Contains(t, out, k+" = ")
	}
	assert.Contains(t, out, "storage.key = carbonData")
}

func TestConfigValidate(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Configuration details:")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("output:\n  default_format: xml\n"), 0o600))
	_, _, err = execute(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.default_format")
}
