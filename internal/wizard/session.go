package wizard

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/emetricx/internal/carbon"
	"github.com/rshade/emetricx/internal/logging"
)

// Session is the wizard state machine. It owns the current snapshot plus the
// unsaved drafts the input screens edit, and persists the snapshot through a
// Store after every mutation. Session is not safe for concurrent use.
type Session struct {
	store  Store
	key    string
	logger zerolog.Logger
	now    func() time.Time

	snap         Snapshot
	draftInputs  carbon.ActivityInputs
	draftOffsets carbon.OffsetInputs
}

// Option configures a Session.
type Option func(*Session)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Session) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithClock overrides the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSession returns a session in the default state. Call Restore to load a
// previously persisted snapshot.
func NewSession(store Store, opts ...Option) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	s := &Session{
		store:  store,
		key:    StorageKey,
		logger: zerolog.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "wizard").Logger()
	s.setSnapshot(NewSnapshot(logging.NewID()))
	return s
}

// Restore loads the stored snapshot. Missing, malformed or incompatible
// records leave the session in its default state and are only logged.
// It reports whether a snapshot was loaded.
func (s *Session) Restore(ctx context.Context) bool {
	log := s.log(ctx)

	data, err := s.store.Get(s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debug().Str("key", s.key).Msg("no stored snapshot, starting fresh")
		} else {
			log.Warn().Err(err).Str("key", s.key).Msg("reading stored snapshot failed, starting fresh")
		}
		return false
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("ignoring stored snapshot, starting fresh")
		return false
	}
	if snap.SessionID == "" {
		snap.SessionID = logging.NewID()
	}

	if snap.Category != carbon.CategoryNone {
		snap.Step = StepDataInput
	} else {
		snap.Step = StepCategory
	}
	s.setSnapshot(snap)

	log.Debug().
		Str("session_id", snap.SessionID).
		Str("category", string(snap.Category)).
		Msg("restored wizard snapshot")
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Session) Snapshot() Snapshot {
	out := s.snap
	out.Inputs = s.snap.Inputs.Clone()
	out.Offsets = s.snap.Offsets.Clone()
	return out
}

// Step returns the active step.
func (s *Session) Step() Step { return s.snap.Step }

// Category returns the selected category.
func (s *Session) Category() carbon.Category { return s.snap.Category }

// Inputs returns a copy of the saved activity inputs.
func (s *Session) Inputs() carbon.ActivityInputs { return s.snap.Inputs.Clone() }

// Offsets returns a copy of the saved offsets.
func (s *Session) Offsets() carbon.OffsetInputs { return s.snap.Offsets.Clone() }

// Totals returns the totals computed at the last save.
func (s *Session) Totals() carbon.Totals { return s.snap.Totals }

// SessionID returns the session identifier.
func (s *Session) SessionID() string { return s.snap.SessionID }

// DraftInputs returns a copy of the unsaved activity inputs.
func (s *Session) DraftInputs() carbon.ActivityInputs { return s.draftInputs.Clone() }

// DraftOffsets returns a copy of the unsaved offsets.
func (s *Session) DraftOffsets() carbon.OffsetInputs { return s.draftOffsets.Clone() }

// SelectCategory sets the category, drops saved and draft activities it does
// not report, recomputes totals and advances to data input.
func (s *Session) SelectCategory(ctx context.Context, c carbon.Category) error {
	if c == carbon.CategoryNone || !c.Valid() {
		return carbon.ErrUnknownCategory
	}
	s.snap.Category = c
	s.snap.Inputs = s.relevantInputs(s.snap.Inputs)
	s.draftInputs = s.relevantInputs(s.draftInputs)
	s.recompute()
	s.snap.Step = StepDataInput
	s.persist(ctx)
	return nil
}

// SetActivity edits one draft activity field and returns the live estimate.
// Nothing is persisted until SaveInputs.
func (s *Session) SetActivity(key string, value float64) (string, error) {
	if _, ok := carbon.FactorFor(key); !ok {
		return s.LiveEstimate(), carbon.ErrUnknownActivity
	}
	s.draftInputs[key] = value
	return s.LiveEstimate(), nil
}

// LiveEstimate recomputes the estimate from the draft inputs.
func (s *Session) LiveEstimate() string {
	return carbon.EstimateCO2e(s.relevantInputs(s.draftInputs))
}

// SaveInputs makes the draft inputs current, recomputes totals against the
// saved offsets and advances to the offsets step.
func (s *Session) SaveInputs(ctx context.Context) carbon.Totals {
	s.snap.Inputs = s.relevantInputs(s.draftInputs)
	s.draftInputs = s.snap.Inputs.Clone()
	s.recompute()
	s.snap.Step = StepOffsets
	s.persist(ctx)
	return s.snap.Totals
}

// SetOffset edits one draft offset field and returns the live offset total.
func (s *Session) SetOffset(key string, value float64) (float64, error) {
	if !carbon.IsOffsetKey(key) {
		return carbon.SumOffsets(s.draftOffsets), carbon.ErrUnknownOffset
	}
	s.draftOffsets[key] = value
	return carbon.SumOffsets(s.draftOffsets), nil
}

// SaveOffsets makes the draft offsets current, recomputes totals and
// advances to gap analysis.
func (s *Session) SaveOffsets(ctx context.Context) carbon.Totals {
	s.snap.Offsets = sanitizedOffsets(s.draftOffsets)
	s.draftOffsets = s.snap.Offsets.Clone()
	s.recompute()
	s.snap.Step = StepGapAnalysis
	s.persist(ctx)
	return s.snap.Totals
}

// Next advances one step, stopping at the last.
func (s *Session) Next(ctx context.Context) Step {
	if s.snap.Step < Last {
		s.GoTo(ctx, s.snap.Step+1)
	}
	return s.snap.Step
}

// Back moves one step back, stopping at the first.
func (s *Session) Back(ctx context.Context) Step {
	if s.snap.Step > First {
		s.GoTo(ctx, s.snap.Step-1)
	}
	return s.snap.Step
}

// GoTo jumps to any step. Unknown steps are ignored.
func (s *Session) GoTo(ctx context.Context, step Step) Step {
	if !step.Valid() || step == s.snap.Step {
		return s.snap.Step
	}
	s.snap.Step = step
	s.persist(ctx)
	return s.snap.Step
}

// Reset restores the defaults, returns to the category step and removes the
// stored snapshot. A new session ID is issued.
func (s *Session) Reset(ctx context.Context) {
	s.setSnapshot(NewSnapshot(logging.NewID()))
	if err := s.store.Delete(s.key); err != nil {
		s.log(ctx).Warn().Err(err).Str("key", s.key).Msg("deleting stored snapshot failed")
		return
	}
	s.log(ctx).Debug().Str("session_id", s.snap.SessionID).Msg("wizard reset")
}

func (s *Session) setSnapshot(snap Snapshot) {
	s.snap = snap
	s.draftInputs = snap.Inputs.Clone()
	s.draftOffsets = snap.Offsets.Clone()
}

func (s *Session) recompute() {
	s.snap.Totals = carbon.ComputeTotals(carbon.TotalsRequest{
		Inputs:  s.snap.Inputs,
		Offsets: s.snap.Offsets,
	})
}

// relevantInputs sanitizes inputs and zeroes activities the category does
// not surface, so totals always match what the report lists.
func (s *Session) relevantInputs(in carbon.ActivityInputs) carbon.ActivityInputs {
	out := carbon.NewActivityInputs()
	for _, f := range carbon.EmissionFactors {
		if f.MiningOnly && !s.snap.Category.IncludesMiningActivities() {
			continue
		}
		out[f.Key] = in.Get(f.Key)
	}
	return out
}

func sanitizedOffsets(in carbon.OffsetInputs) carbon.OffsetInputs {
	out := carbon.NewOffsetInputs()
	for k := range out {
		out[k] = in.Get(k)
	}
	return out
}

func (s *Session) persist(ctx context.Context) {
	s.snap.UpdatedAt = s.now().UTC()

	data, err := s.snap.Encode()
	if err != nil {
		s.log(ctx).Warn().Err(err).Msg("encoding snapshot failed")
		return
	}
	if err := s.store.Set(s.key, data); err != nil {
		s.log(ctx).Warn().Err(err).Str("key", s.key).Msg("persisting snapshot failed")
	}
}

func (s *Session) log(ctx context.Context) *zerolog.Logger {
	if l := logging.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
