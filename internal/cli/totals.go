package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/rshade/emetricx/internal/carbon"
	"github.com/rshade/emetricx/internal/config"
	"github.com/rshade/emetricx/internal/greenops"
	"github.com/rshade/emetricx/internal/report"
)

// TotalsResult is the JSON shape of the totals command.
type TotalsResult struct {
	Totals         carbon.Totals `json:"totals"`
	Status         string        `json:"status"`
	NetNegative    bool          `json:"netNegative"`
	Equivalencies  []string      `json:"equivalencies,omitempty"`
	Recommendation string        `json:"recommendation"`
	Saved          bool          `json:"saved"`
}

// NewTotalsCmd creates the totals command, which combines emissions and
// offsets into the neutrality gap.
func NewTotalsCmd() *cobra.Command {
	var (
		category  string
		output    string
		emissions float64
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Compute emissions, offsets and the neutrality gap",
		Long: `Computes total emissions, total offsets and the neutrality gap
(max(emissions - offsets, 0)). Emissions come from --emissions when given,
otherwise they are estimated from the activity flags.

With --save the inputs, offsets and totals become the saved wizard state used
by the report, chart and export commands.`,
		Example: `  # Gap against a precomputed emissions figure
  emetricx totals --emissions 264 --afforestation 100 --renewables 50 --carbon-credits 20

  # Estimate, compute and save for the report
  emetricx totals --category Organization --electricity 100 --renewables 30 --save`,
		Args: noArgs,
	}
	activities := bindActivityFlags(cmd.Flags())
	offsets := bindOffsetFlags(cmd.Flags())
	cmd.Flags().Float64Var(&emissions, "emissions", 0, "precomputed emissions in t CO2e (skips the estimate)")
	cmd.Flags().StringVar(&category, "category", "", "profile category (Organization or Mining)")
	cmd.Flags().StringVar(&output, "output", "", "output format (text, json); defaults to config")
	cmd.Flags().BoolVar(&save, "save", false, "save inputs, offsets and totals as the wizard state")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		req := carbon.TotalsRequest{Inputs: activities.Inputs(), Offsets: offsets.Offsets()}
		if cmd.Flags().Changed("emissions") {
			req.Emissions = &emissions
		}
		return executeTotals(cmd, req, category, output, save)
	}
	return cmd
}

func executeTotals(cmd *cobra.Command, req carbon.TotalsRequest, categoryFlag, outputFlag string, save bool) error {
	c, err := parseCategoryFlag(categoryFlag)
	if err != nil {
		return err
	}
	format, err := resolveOutputFormat(outputFlag)
	if err != nil {
		return err
	}
	warnNegative(req.Inputs)
	warnNegative(req.Offsets)
	req.Inputs = categoryInputs(c, req.Inputs)
	if req.Emissions != nil && (math.IsNaN(*req.Emissions) || *req.Emissions < 0) {
		logger.Warn().Float64("emissions", *req.Emissions).Msg("invalid emissions value normalized")
	}

	totals := carbon.ComputeTotals(req)
	if save {
		if req.Emissions != nil {
			return usageErrorf("--save cannot be combined with --emissions")
		}
		if totals, err = saveTotals(cmd, c, req); err != nil {
			return err
		}
	}

	summary := greenops.ForTotals(totals)
	equivalencies := make([]string, 0, 2)
	for _, text := range []string{summary.EmissionsText, summary.GapText} {
		if text != "" {
			equivalencies = append(equivalencies, text)
		}
	}

	if format == config.FormatJSON {
		return writeJSON(cmd.OutOrStdout(), TotalsResult{
			Totals:         totals,
			Status:         totals.Status().String(),
			NetNegative:    totals.NetNegative(),
			Equivalencies:  equivalencies,
			Recommendation: totals.Recommendation(),
			Saved:          save,
		})
	}

	out := cmd.OutOrStdout()
	if err := report.RenderTotals(out, totals); err != nil {
		return err
	}
	for _, text := range equivalencies {
		if _, err := fmt.Fprintln(out, text); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "\n%s\n", totals.Recommendation()); err != nil {
		return err
	}
	if save {
		cmd.PrintErrln("Saved as wizard state")
	}
	return nil
}

// saveTotals drives the wizard session through its save actions so the
// stored state matches what the wizard would have produced.
func saveTotals(cmd *cobra.Command, c carbon.Category, req carbon.TotalsRequest) (carbon.Totals, error) {
	ctx := cmd.Context()
	session := openSession(cmd)

	if c == carbon.CategoryNone {
		c = session.Category()
	}
	if c == carbon.CategoryNone {
		c = carbon.CategoryOrganization
		if req.Inputs.Get(carbon.KeyCoalTransport) > 0 {
			c = carbon.CategoryMining
		}
	}
	if err := session.SelectCategory(ctx, c); err != nil {
		return carbon.Totals{}, err
	}

	for k, v := range req.Offsets {
		if _, err := session.SetOffset(k, v); err != nil {
			return carbon.Totals{}, err
		}
	}
	session.SaveOffsets(ctx)

	for k, v := range req.Inputs {
		if _, err := session.SetActivity(k, v); err != nil {
			return carbon.Totals{}, err
		}
	}
	totals := session.SaveInputs(ctx)

	logger.Info().Ctx(ctx).
		Str("session_id", session.SessionID()).
		Str("category", string(c)).
		Float64("gap", totals.Gap).
		Msg("totals saved")
	return totals, nil
}
