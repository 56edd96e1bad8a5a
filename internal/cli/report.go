package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/internal/report"
	"github.com/rshade/emetricx/internal/wizard"
)

// NewReportCmd creates the report command, which downloads the summary report
// for the saved wizard state.
func NewReportCmd() *cobra.Command {
	var (
		dir    string
		stdout bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the summary report for the saved state",
		Long: `Builds the E-METRICX summary report from the saved wizard state and writes it
to emetricx-report-<unix-millis>.txt in the report directory.`,
		Example: `  # Write the report to the configured directory
  emetricx report

  # Print it instead
  emetricx report --stdout

  # Structured report
  emetricx report --output json`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}

			data := reportData(openSession(cmd))
			now := time.Now()

			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), report.NewDocument(data, now))
			}
			if stdout {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Build(data, now))
				return nil
			}

			if dir == "" {
				dir = config.GetGlobalConfig().Report.Directory
			}
			path, err := report.Write(dir, data, now)
			if err != nil {
				return err
			}
			logger.Info().Ctx(cmd.Context()).Str("path", path).Msg("report written")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to write the report to (defaults to config report.directory)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the report instead of writing a file")
	cmd.Flags().StringVar(&output, "output", "", "output format (text, json); defaults to config")
	return cmd
}

func reportData(s *wizard.Session) report.Data {
	return report.Data{
		Category: s.Category(),
		Inputs:   s.Inputs(),
		Offsets:  s.Offsets(),
		Totals:   s.Totals(),
	}
}
