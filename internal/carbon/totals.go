package carbon

import (
	"math"
	"strconv"
)

// ComputeTotals combines emissions and offsets into a Totals record.
//
// A finite req.Emissions is used as given (clamped at zero); otherwise the
// emissions are estimated from req.Inputs and read back from the two-decimal
// formatted estimate, so persisted totals match what the live estimate showed.
// The gap is truncated at zero: a surplus of offsets is reported as a zero gap,
// never a negative one.
func ComputeTotals(req TotalsRequest) Totals {
	emissions := resolveEmissions(req)
	offsets := SumOffsets(req.Offsets)

	return Totals{
		Emissions: emissions,
		Offsets:   offsets,
		Gap:       math.Max(emissions-offsets, 0),
	}
}

// SumOffsets adds the recognized offset fields. Unknown keys are ignored.
func SumOffsets(offsets OffsetInputs) float64 {
	total := 0.0
	for _, k := range OffsetKinds {
		total += offsets.Get(k.Key)
	}
	return total
}

func resolveEmissions(req TotalsRequest) float64 {
	if req.Emissions != nil && !math.IsNaN(*req.Emissions) && !math.IsInf(*req.Emissions, 0) {
		return sanitize(*req.Emissions)
	}

	v, err := strconv.ParseFloat(EstimateCO2e(req.Inputs), 64)
	if err != nil {
		// EstimateCO2e always yields a decimal string.
		return 0
	}
	return v
}
