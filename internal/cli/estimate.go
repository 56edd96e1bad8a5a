package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/emetricx/internal/carbon"
	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/internal/report"
)

// EstimateResult is the JSON shape of the estimate command.
type EstimateResult struct {
	Category      string                `json:"category"`
	Inputs        carbon.ActivityInputs `json:"inputs"`
	Contributions []carbon.Contribution `json:"contributions"`
	Estimate      string                `json:"estimate"`
	Unit          string                `json:"unit"`
}

// NewEstimateCmd creates the estimate command, which prints the CO2e estimate
// for a set of activity quantities.
func NewEstimateCmd() *cobra.Command {
	var (
		category string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate CO2e emissions from activity data",
		Long: `Converts activity quantities into a CO2-equivalent emissions estimate using the
fixed factor table (electricity 0.82, transport 2.3, fuel 2.5, waste 1.7,
coal transport 3.0). Negative or missing quantities count as zero.`,
		Example: `  # Organization estimate
  emetricx estimate --electricity 100 --transport 50 --fuel 20 --waste 10

  # Mining estimate including coal transport, as JSON
  emetricx estimate --category mining --electricity 100 --coal-transport 10 --output json`,
		Args: noArgs,
	}
	activities := bindActivityFlags(cmd.Flags())
	cmd.Flags().StringVar(&category, "category", "", "profile category (Organization or Mining)")
	cmd.Flags().StringVar(&output, "output", "", "output format (text, json); defaults to config")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return executeEstimate(cmd, activities.Inputs(), category, output)
	}
	return cmd
}

func executeEstimate(cmd *cobra.Command, inputs carbon.ActivityInputs, categoryFlag, outputFlag string) error {
	c, err := parseCategoryFlag(categoryFlag)
	if err != nil {
		return err
	}
	format, err := resolveOutputFormat(outputFlag)
	if err != nil {
		return err
	}
	warnNegative(inputs)
	inputs = categoryInputs(c, inputs)

	estimate := carbon.EstimateCO2e(inputs)
	includeMining := c.IncludesMiningActivities() || (c == carbon.CategoryNone && inputs.Get(carbon.KeyCoalTransport) > 0)
	contributions := carbon.Contributions(inputs, includeMining)

	logger.Debug().Ctx(cmd.Context()).
		Str("category", string(c)).
		Str("estimate", estimate).
		Msg("estimate computed")

	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), EstimateResult{
			Category:      c.DisplayName(),
			Inputs:        inputs,
			Contributions: contributions,
			Estimate:      estimate,
			Unit:          carbon.TonnesUnit,
		})
	}

	out := cmd.OutOrStdout()
	if err := report.RenderBreakdown(out, contributions, estimate, config.GetOutputPrecision()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\nEstimated CO2e: %s %s\n", estimate, carbon.TonnesUnit)
	return err
}
