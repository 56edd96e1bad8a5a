package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rshade/emetricx/internal/carbon"
)

// tabwriterPadding is the minimum padding between breakdown columns.
const tabwriterPadding = 2

// RenderBreakdown writes a per-activity table followed by the estimate total.
// precision sets the decimals of the per-activity CO2e column; the total is
// always the two-decimal estimate.
func RenderBreakdown(w io.Writer, contributions []carbon.Contribution, estimate string, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', tabwriter.AlignRight)

	if _, err := fmt.Fprintf(tw, "ACTIVITY\tQUANTITY\tUNIT\tFACTOR\tCO2E (t)\t\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t--------\t----\t------\t--------\t\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, c := range contributions {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			c.Label,
			Quantity(c.Quantity),
			c.Unit,
			strconv.FormatFloat(c.Factor, 'f', -1, 64),
			strconv.FormatFloat(c.CO2e, 'f', max(precision, 0), 64),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if _, err := fmt.Fprintf(tw, "TOTAL\t\t\t\t%s\t\n", estimate); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}
	return tw.Flush()
}

// RenderTotals writes the three totals and the neutrality status.
func RenderTotals(w io.Writer, t carbon.Totals) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	rows := [][2]string{
		{"Total Emissions", Tonnes(t.Emissions)},
		{"Total Offsets", Tonnes(t.Offsets)},
		{"Neutrality Gap", Tonnes(t.Gap)},
		{"Status", t.Status().String()},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return fmt.Errorf("writing totals: %w", err)
		}
	}
	return tw.Flush()
}
