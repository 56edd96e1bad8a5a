package wizard

import "fmt"

// Step is one screen of the wizard.
type Step int

// Wizard steps in order.
const (
	StepCategory Step = iota
	StepDataInput
	StepOffsets
	StepGapAnalysis
	StepVisualize
	StepReport
)

// Steps lists every step in display order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var Steps = []Step{
	StepCategory,
	StepDataInput,
	StepOffsets,
	StepGapAnalysis,
	StepVisualize,
	StepReport,
}

// Title returns the stepper label.
func (s Step) Title() string {
	switch s {
	case StepCategory:
		return "Category"
	case StepDataInput:
		return "Data Input"
	case StepOffsets:
		return "Offsets"
	case StepGapAnalysis:
		return "Gap Analysis"
	case StepVisualize:
		return "Visualize"
	case StepReport:
		return "Report"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// String implements fmt.Stringer.
func (s Step) String() string { return s.Title() }

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	return s >= StepCategory && s <= StepReport
}

// First and Last bound the step range.
const (
	First = StepCategory
	Last  = StepReport
)
