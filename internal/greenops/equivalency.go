package greenops

import (
	"fmt"
	"math"

	"github.com/rshade/emetricx/internal/carbon"
)

// Calculate normalizes input to kilograms and computes one equivalency per
// requested type. Inputs below MinEquivalencyThresholdKg yield an empty output.
func Calculate(input CarbonInput, types ...EquivalencyType) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	results := make([]EquivalencyResult, 0, len(types))
	for _, typ := range types {
		factor := typ.factor()
		if factor == 0 {
			continue
		}
		v := kg / factor
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
		results = append(results, EquivalencyResult{
			Type:           typ,
			Value:          v,
			FormattedValue: formatEquivalencyValue(v),
			Label:          typ.label(),
		})
	}

	return EquivalencyOutput{InputKg: kg, Results: results}, nil
}

// ForTotals computes the equivalencies shown next to a totals record. Totals
// are in tonnes CO2e. Calculation failures degrade to empty outputs.
func ForTotals(t carbon.Totals) Summary {
	var s Summary

	emissions, err := Calculate(CarbonInput{Value: t.Emissions, Unit: carbon.TonnesUnit},
		EquivalencyMilesDriven, EquivalencyHomeDays)
	if err != nil {
		emissions = EquivalencyOutput{IsEmpty: true}
	}
	s.Emissions = emissions
	if !emissions.IsEmpty && len(emissions.Results) == 2 {
		s.EmissionsText = fmt.Sprintf("Equivalent to driving ~%s miles or powering a home for ~%s days",
			emissions.Results[0].FormattedValue, emissions.Results[1].FormattedValue)
	}

	gap, err := Calculate(CarbonInput{Value: t.Gap, Unit: carbon.TonnesUnit}, EquivalencyTreeSeedlings)
	if err != nil {
		gap = EquivalencyOutput{IsEmpty: true}
	}
	s.Gap = gap
	if !gap.IsEmpty && len(gap.Results) == 1 {
		s.GapText = fmt.Sprintf("Closing the gap takes ~%s tree seedlings grown for 10 years",
			gap.Results[0].FormattedValue)
	}

	return s
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
