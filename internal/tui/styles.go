package tui

import "github.com/charmbracelet/lipgloss"

// Palette used across the wizard views.
const (
	ColorHeader    = lipgloss.Color("86")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorOK        = lipgloss.Color("42")
	ColorWarning   = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
)

// Status icons.
const (
	IconCheck    = "✓"
	IconWarning  = "⚠"
	IconSelected = "●"
	IconOpen     = "○"
	IconCursor   = "›"
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(ColorHeader)

	StepActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("0")).
			Background(ColorHeader)

	StepDoneStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted)

	StepPendingStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(ColorValue)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	LabelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle   = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	HelpStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	OKStyle      = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
