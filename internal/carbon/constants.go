package carbon

// EmissionFactor is a fixed multiplier converting one activity unit into CO2e mass.
type EmissionFactor struct {
	// Key is the activity key in ActivityInputs.
	Key string

	// Label is the human-readable activity name used in reports and charts.
	Label string

	// Unit is the input unit of the activity quantity.
	Unit string

	// Factor is the CO2e mass per input unit.
	Factor float64

	// MiningOnly marks activities that are surfaced only for the Mining category.
	MiningOnly bool
}

// EmissionFactors is the process-wide factor table, in report order.
// Summation follows this order so results are reproducible bit for bit.
//
//nolint:gochecknoglobals // Read-only lookup table.
var EmissionFactors = []EmissionFactor{
	{Key: KeyElectricity, Label: "Electricity", Unit: "kWh", Factor: 0.82},
	{Key: KeyTransport, Label: "Transport", Unit: "km", Factor: 2.3},
	{Key: KeyFuel, Label: "Fuel", Unit: "L", Factor: 2.5},
	{Key: KeyWaste, Label: "Waste", Unit: "kg", Factor: 1.7},
	{Key: KeyCoalTransport, Label: "Coal Transport", Unit: "ton-km", Factor: 3.0, MiningOnly: true},
}

// OffsetKind describes one offset source.
type OffsetKind struct {
	Key   string
	Label string
}

// OffsetKinds lists the offset sources, in report order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var OffsetKinds = []OffsetKind{
	{Key: KeyAfforestation, Label: "Afforestation"},
	{Key: KeyRenewables, Label: "Renewables"},
	{Key: KeyCarbonCredits, Label: "Carbon Credits"},
}

// TonnesUnit is the display unit for totals.
const TonnesUnit = "t"

// FactorFor returns the factor table entry for key.
func FactorFor(key string) (EmissionFactor, bool) {
	for _, f := range EmissionFactors {
		if f.Key == key {
			return f, true
		}
	}
	return EmissionFactor{}, false
}

// IsOffsetKey reports whether key names a recognized offset source.
func IsOffsetKey(key string) bool {
	for _, k := range OffsetKinds {
		if k.Key == key {
			return true
		}
	}
	return false
}
