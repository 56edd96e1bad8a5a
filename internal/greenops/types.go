// Package greenops turns abstract CO2e quantities into relatable real-world
// equivalencies (miles driven, home electricity days, tree seedlings) using
// EPA-published conversion factors.
package greenops

import "fmt"

// EquivalencyType represents a category of carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven converts CO2e to miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencyHomeDays converts CO2e to days of average US home electricity use.
	EquivalencyHomeDays

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencyHomeDays:
		return "HomeDays"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

func (e EquivalencyType) factor() float64 {
	switch e {
	case EquivalencyMilesDriven:
		return EPAMilesDrivenFactor
	case EquivalencyHomeDays:
		return EPAHomeDayFactor
	case EquivalencyTreeSeedlings:
		return EPATreeSeedlingFactor
	default:
		return 0
	}
}

func (e EquivalencyType) label() string {
	switch e {
	case EquivalencyMilesDriven:
		return "miles driven"
	case EquivalencyHomeDays:
		return "days of home electricity"
	case EquivalencyTreeSeedlings:
		return "tree seedlings grown for 10 years"
	default:
		return e.String()
	}
}

// CarbonInput is a CO2e quantity with its unit (g, kg, t).
type CarbonInput struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// EquivalencyResult is a single calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds the equivalencies computed for one input.
type EquivalencyOutput struct {
	// InputKg is the normalized input in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	// Results are in the order the types were requested.
	Results []EquivalencyResult `json:"results,omitempty"`

	// IsEmpty is true when the input was below MinEquivalencyThresholdKg.
	IsEmpty bool `json:"is_empty"`
}

// Summary pairs the emissions and gap equivalencies for one totals record.
type Summary struct {
	// Emissions expresses gross emissions as miles driven and home days.
	Emissions EquivalencyOutput `json:"emissions"`

	// Gap expresses the neutrality gap as tree seedlings needed to absorb it.
	Gap EquivalencyOutput `json:"gap"`

	// EmissionsText is prose for the emissions, empty when IsEmpty.
	EmissionsText string `json:"emissions_text,omitempty"`

	// GapText is prose for the gap, empty when the gap is closed.
	GapText string `json:"gap_text,omitempty"`
}
