package carbon

import (
	"strconv"
)

// EstimateCO2e converts activity inputs into a CO2e total formatted with
// exactly two fractional digits, e.g. "264.00".
//
// Each factor table entry is looked up in inputs; missing, non-finite and
// negative values contribute nothing, as do keys outside the table.
func EstimateCO2e(inputs ActivityInputs) string {
	return strconv.FormatFloat(EstimateCO2eValue(inputs), 'f', 2, 64)
}

// EstimateCO2eValue returns the unformatted emissions sum for inputs.
func EstimateCO2eValue(inputs ActivityInputs) float64 {
	total := 0.0
	for _, f := range EmissionFactors {
		total += inputs.Get(f.Key) * f.Factor
	}
	return total
}

// Contributions returns the per-activity products that make up the emissions
// total, in factor table order. Mining-only activities are omitted unless
// includeMiningOnly is set.
func Contributions(inputs ActivityInputs, includeMiningOnly bool) []Contribution {
	out := make([]Contribution, 0, len(EmissionFactors))
	for _, f := range EmissionFactors {
		if f.MiningOnly && !includeMiningOnly {
			continue
		}
		q := inputs.Get(f.Key)
		out = append(out, Contribution{
			Key:      f.Key,
			Label:    f.Label,
			Unit:     f.Unit,
			Quantity: q,
			Factor:   f.Factor,
			CO2e:     q * f.Factor,
		})
	}
	return out
}
