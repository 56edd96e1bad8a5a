// Package carbon is the carbon accounting engine.
//
// It converts raw activity quantities into CO2-equivalent emissions using a
// fixed factor table, sums offset contributions and derives the neutrality gap.
// Every function in this package is pure: inputs are read, never mutated, and
// invalid numeric values are normalized to zero instead of producing errors.
package carbon

// Activity keys recognized by the emission factor table.
const (
	KeyElectricity   = "electricity"
	KeyTransport     = "transport"
	KeyFuel          = "fuel"
	KeyWaste         = "waste"
	KeyCoalTransport = "coalTransport"
)

// Offset keys recognized by the totals aggregator.
const (
	KeyAfforestation = "afforestation"
	KeyRenewables    = "renewables"
	KeyCarbonCredits = "carbonCredits"
)

// ActivityInputs maps an activity key to its raw quantity (kWh, km, L, kg, ton-km).
// Unknown keys are ignored by the estimator and missing keys read as zero.
type ActivityInputs map[string]float64

// OffsetInputs maps an offset key to a quantity in tonnes CO2e.
type OffsetInputs map[string]float64

// NewActivityInputs returns inputs with every recognized activity set to zero.
func NewActivityInputs() ActivityInputs {
	inputs := make(ActivityInputs, len(EmissionFactors))
	for _, f := range EmissionFactors {
		inputs[f.Key] = 0
	}
	return inputs
}

// NewOffsetInputs returns offsets with every recognized offset set to zero.
func NewOffsetInputs() OffsetInputs {
	offsets := make(OffsetInputs, len(OffsetKinds))
	for _, k := range OffsetKinds {
		offsets[k.Key] = 0
	}
	return offsets
}

// Get returns the resolved quantity for key. Missing, non-finite and negative
// values resolve to zero.
func (a ActivityInputs) Get(key string) float64 {
	return sanitize(a[key])
}

// Clone returns an independent copy of the inputs.
func (a ActivityInputs) Clone() ActivityInputs {
	out := make(ActivityInputs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Get returns the resolved quantity for key.
func (o OffsetInputs) Get(key string) float64 {
	return sanitize(o[key])
}

// Clone returns an independent copy of the offsets.
func (o OffsetInputs) Clone() OffsetInputs {
	out := make(OffsetInputs, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Totals is the record produced on every save action.
type Totals struct {
	// Emissions is the gross CO2e total.
	Emissions float64 `json:"emissions" yaml:"emissions"`

	// Offsets is the sum of afforestation, renewables and carbon credits.
	Offsets float64 `json:"offsets" yaml:"offsets"`

	// Gap is max(Emissions-Offsets, 0).
	Gap float64 `json:"gap" yaml:"gap"`
}

// Contribution is one activity's share of the emissions total.
type Contribution struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
	Factor   float64 `json:"factor"`
	CO2e     float64 `json:"co2e"`
}

// TotalsRequest carries the inputs for ComputeTotals.
type TotalsRequest struct {
	Inputs  ActivityInputs
	Offsets OffsetInputs

	// Emissions is an optional precomputed emissions value. When nil or
	// non-finite, emissions are estimated from Inputs.
	Emissions *float64
}
