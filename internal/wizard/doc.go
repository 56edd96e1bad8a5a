// Package wizard holds the six-step wizard state and its persistence.
//
// A Session walks Category, Data Input, Offsets, Gap Analysis, Visualize and
// Report. Input screens edit drafts; only the save actions recompute totals
// through the carbon engine. The snapshot is written to a Store under
// StorageKey after every mutation, and storage failures never interrupt the
// wizard.
package wizard
