package carbon

import "fmt"

// NeutralityStatus classifies a Totals record for display.
type NeutralityStatus int

const (
	// StatusNoEmissions means nothing has been recorded yet. It is distinct
	// from neutrality even though the gap is zero in both cases.
	StatusNoEmissions NeutralityStatus = iota

	// StatusNeutral means offsets meet or exceed emissions.
	StatusNeutral

	// StatusGapRemains means emissions still exceed offsets.
	StatusGapRemains
)

// String returns the status line shown on the gap analysis screen.
func (s NeutralityStatus) String() string {
	switch s {
	case StatusNoEmissions:
		return "No emissions recorded"
	case StatusNeutral:
		return "Carbon Neutral or Net-Negative achieved"
	case StatusGapRemains:
		return "Neutrality gap remains"
	default:
		return fmt.Sprintf("NeutralityStatus(%d)", int(s))
	}
}

// Status classifies the totals.
func (t Totals) Status() NeutralityStatus {
	switch {
	case t.Emissions <= 0:
		return StatusNoEmissions
	case t.Gap <= 0:
		return StatusNeutral
	default:
		return StatusGapRemains
	}
}

// NetNegative reports whether offsets strictly exceed recorded emissions.
// The gap alone cannot tell this apart from exact neutrality.
func (t Totals) NetNegative() bool {
	return t.Emissions > 0 && t.Offsets > t.Emissions
}

// Recommendation returns the closing advice for the report.
func (t Totals) Recommendation() string {
	if t.Gap <= 0 {
		return "You have achieved carbon neutrality or better. Maintain offsets and continue monitoring."
	}
	return "Consider increasing renewable investments, expanding afforestation, " +
		"or acquiring verified credits to close the neutrality gap."
}
