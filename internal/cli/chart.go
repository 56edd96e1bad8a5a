package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/emetricx/internal/chart"
	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/internal/wizard"
)

// NewChartCmd creates the chart command, which renders the four wizard charts
// for the saved state.
func NewChartCmd() *cobra.Command {
	var (
		width  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the emission, offset and gap charts",
		Example: `  # Terminal bar charts
  emetricx chart --width 40

  # Chart configs for another renderer
  emetricx chart --output json`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			if width < chart.MinBarWidth {
				return usageErrorf("--width must be at least %d", chart.MinBarWidth)
			}

			charts := chart.Build(chartData(openSession(cmd)))
			if format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), charts)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), chart.RenderAll(charts, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", chart.DefaultBarWidth, "bar width in columns")
	cmd.Flags().StringVar(&output, "output", "", "output format (text, json); defaults to config")
	return cmd
}

func chartData(s *wizard.Session) chart.Data {
	return chart.Data{
		Category: s.Category(),
		Inputs:   s.Inputs(),
		Offsets:  s.Offsets(),
		Totals:   s.Totals(),
	}
}
