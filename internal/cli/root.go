package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/emetricx/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the emetricx CLI.
// It wires up logging, tracing and every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "emetricx",
		Short:         "Carbon accounting wizard and calculator",
		Long:          "E-METRICX: estimate CO2e emissions, tally offsets and track the gap to carbon neutrality",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("state-dir", "", "directory for saved wizard state (overrides config)")
	cmd.PersistentFlags().Bool("ephemeral", false, "keep wizard state in memory only")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	cmd.AddCommand(
		NewWizardCmd(),
		NewEstimateCmd(),
		NewTotalsCmd(),
		NewReportCmd(),
		NewChartCmd(),
		NewExportCmd(),
		newStateCmd(),
		newConfigCmd(),
		NewVersionCmd(ver),
	)

	return cmd
}

const rootCmdExample = `  # Walk through the interactive wizard
  emetricx wizard

  # Estimate emissions for a set of activities
  emetricx estimate --electricity 100 --transport 50 --fuel 20 --waste 10

  # Compute totals and the neutrality gap, saving them for the report
  emetricx totals --category Mining --electricity 100 --coal-transport 10 --afforestation 40 --save

  # Download the report for the saved state
  emetricx report --dir ./reports

  # Show the charts in the terminal
  emetricx chart

  # Set configuration values
  emetricx config set output.default_format json`

// newStateCmd creates the state command group.
func newStateCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "state", Short: "Saved wizard state commands"}
	cmd.AddCommand(NewStateShowCmd(), NewStateResetCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
