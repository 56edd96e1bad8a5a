package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-json"

	"github.com/rshade/emetricx/internal/carbon"
)

// SchemaVersion is the version written into every snapshot.
const SchemaVersion = "1.0.0"

// Snapshot errors.
var (
	ErrIncompatibleVersion = errors.New("incompatible snapshot version")
	ErrInvalidCategory     = errors.New("snapshot has unknown category")
)

//nolint:gochecknoglobals // Parsed once.
var supportedSchema = semver.MustParse(SchemaVersion)

// Snapshot is the persisted wizard record. Its category, inputs, offsets and
// totals fields keep the shape of the original carbonData record so older
// records without a version still load.
type Snapshot struct {
	Version   string                `json:"version,omitempty"`
	SessionID string                `json:"sessionId,omitempty"`
	Category  carbon.Category       `json:"category"`
	Step      Step                  `json:"step"`
	Inputs    carbon.ActivityInputs `json:"inputs"`
	Offsets   carbon.OffsetInputs   `json:"offsets"`
	Totals    carbon.Totals         `json:"totals"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// NewSnapshot returns the default record: no category, all-zero inputs,
// offsets and totals.
func NewSnapshot(sessionID string) Snapshot {
	return Snapshot{
		Version:   SchemaVersion,
		SessionID: sessionID,
		Category:  carbon.CategoryNone,
		Step:      StepCategory,
		Inputs:    carbon.NewActivityInputs(),
		Offsets:   carbon.NewOffsetInputs(),
	}
}

// Encode serializes the snapshot.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}

// storedSnapshot is the on-disk shape read back by UnmarshalJSON. Quantities
// are loosely typed and totals are not read.
type storedSnapshot struct {
	Version   string          `json:"version"`
	SessionID string          `json:"sessionId"`
	Category  carbon.Category `json:"category"`
	Step      Step            `json:"step"`
	Inputs    map[string]any  `json:"inputs"`
	Offsets   map[string]any  `json:"offsets"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// UnmarshalJSON decodes inputs and offsets loosely so a non-numeric field
// counts as zero instead of failing the record. Stored totals are ignored and
// recomputed from the decoded quantities.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw storedSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	inputs := carbon.ActivityInputsFromAny(raw.Inputs)
	offsets := carbon.OffsetInputsFromAny(raw.Offsets)
	*s = Snapshot{
		Version:   raw.Version,
		SessionID: raw.SessionID,
		Category:  raw.Category,
		Step:      raw.Step,
		Inputs:    inputs,
		Offsets:   offsets,
		Totals:    carbon.ComputeTotals(carbon.TotalsRequest{Inputs: inputs, Offsets: offsets}),
		UpdatedAt: raw.UpdatedAt,
	}
	return nil
}

// DecodeSnapshot parses and validates a stored snapshot. Missing inputs and
// offsets are filled with zero defaults, stored quantities are sanitized,
// Mining-only activities are dropped for other categories and totals are
// recomputed.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}

	if err := checkVersion(s.Version); err != nil {
		return Snapshot{}, err
	}
	if !s.Category.Valid() {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrInvalidCategory, s.Category)
	}

	inputs := carbon.NewActivityInputs()
	for _, f := range carbon.EmissionFactors {
		if f.MiningOnly && !s.Category.IncludesMiningActivities() {
			continue
		}
		inputs[f.Key] = s.Inputs.Get(f.Key)
	}
	offsets := carbon.NewOffsetInputs()
	for k := range offsets {
		offsets[k] = s.Offsets.Get(k)
	}
	s.Inputs = inputs
	s.Offsets = offsets
	s.Totals = carbon.ComputeTotals(carbon.TotalsRequest{Inputs: s.Inputs, Offsets: s.Offsets})
	s.Version = SchemaVersion

	if !s.Step.Valid() {
		s.Step = StepCategory
	}
	return s, nil
}

// checkVersion accepts unversioned records and any version sharing the
// current major version.
func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrIncompatibleVersion, v, err)
	}
	if parsed.Major() != supportedSchema.Major() {
		return fmt.Errorf("%w: %s (supported %d.x)", ErrIncompatibleVersion, parsed, supportedSchema.Major())
	}
	return nil
}
