package carbon

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for lookups at the engine boundary. The estimator and the
// aggregator themselves never fail.
var (
	// ErrUnknownCategory indicates a profile category other than Organization or Mining.
	ErrUnknownCategory = constError("unknown profile category")

	// ErrUnknownActivity indicates an activity key missing from the factor table.
	ErrUnknownActivity = constError("unknown activity")

	// ErrUnknownOffset indicates an offset key other than afforestation, renewables or carbonCredits.
	ErrUnknownOffset = constError("unknown offset")
)
