package cli_test

import (
	"bytes"
	"testing"

	"github.com/rshade/emetricx/internal/cli"
	"github.com/rshade/emetricx/internal/config"
)

// setupCLITest isolates config, state and logging in a temp home and returns it.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvStateDir, "")
	t.Setenv(config.EnvReportDir, "")
	t.Setenv(config.EnvPrecision, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
