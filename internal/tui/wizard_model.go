package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/emetricx/internal/carbon"
	"github.com/rshade/emetricx/internal/chart"
	"github.com/rshade/emetricx/internal/logging"
	"github.com/rshade/emetricx/internal/report"
	"github.com/rshade/emetricx/internal/wizard"
)

// Default dimensions for the wizard model.
const (
	wizardDefaultWidth  = 80
	wizardDefaultHeight = 24
	fieldCharLimit      = 16
	fieldWidth          = 18
	chartMargin         = 40
)

// inputField is one editable quantity on the data input or offsets step.
type inputField struct {
	key   string
	label string
	unit  string
	input textinput.Model
}

// WizardModel is the Bubble Tea model for the six-step carbon wizard.
type WizardModel struct {
	ctx       context.Context
	session   *wizard.Session
	reportDir string
	now       func() time.Time

	// Category step
	categoryCursor int

	// Data input and offsets steps
	fields []inputField
	focus  int

	// Flash message shown under the active step
	notice string
	err    error

	quitting bool
	width    int
	height   int
}

// NewWizardModel creates a wizard over session. Reports downloaded from the
// report step are written to reportDir.
func NewWizardModel(ctx context.Context, session *wizard.Session, reportDir string) *WizardModel {
	m := &WizardModel{
		ctx:       ctx,
		session:   session,
		reportDir: reportDir,
		now:       time.Now,
		width:     wizardDefaultWidth,
		height:    wizardDefaultHeight,
	}
	m.enterStep()
	return m
}

// SetClock overrides the time source used for report timestamps.
func (m *WizardModel) SetClock(now func() time.Time) {
	if now != nil {
		m.now = now
	}
}

// Session returns the underlying wizard session.
func (m *WizardModel) Session() *wizard.Session {
	return m.session
}

// Quitting reports whether the user asked to exit.
func (m *WizardModel) Quitting() bool {
	return m.quitting
}

// Init initializes the model.
func (m *WizardModel) Init() tea.Cmd {
	if len(m.fields) > 0 {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg routes global shortcuts first, then step-specific keys.
func (m *WizardModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+n":
		m.session.Next(m.ctx)
		return m, m.enterStep()

	case "ctrl+b":
		m.session.Back(m.ctx)
		return m, m.enterStep()

	case "ctrl+r":
		m.session.Reset(m.ctx)
		m.categoryCursor = 0
		cmd := m.enterStep()
		m.notice = "Wizard reset"
		return m, cmd
	}

	m.err = nil
	switch m.session.Step() {
	case wizard.StepCategory:
		return m.handleCategoryKey(msg)
	case wizard.StepDataInput, wizard.StepOffsets:
		return m.handleFieldKey(msg)
	case wizard.StepGapAnalysis, wizard.StepVisualize:
		return m.handleReadOnlyKey(msg)
	case wizard.StepReport:
		if msg.String() == "d" {
			m.downloadReport()
			return m, nil
		}
		return m.handleReadOnlyKey(msg)
	}
	return m, nil
}

func (m *WizardModel) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.categoryCursor > 0 {
			m.categoryCursor--
		}
	case "down", "j":
		if m.categoryCursor < len(carbon.Categories)-1 {
			m.categoryCursor++
		}
	case "enter", " ":
		if err := m.session.SelectCategory(m.ctx, carbon.Categories[m.categoryCursor]); err != nil {
			m.err = err
			return m, nil
		}
		return m, m.enterStep()
	default:
		return m.handleStepJump(msg)
	}
	return m, nil
}

func (m *WizardModel) handleReadOnlyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.session.Next(m.ctx)
		return m, m.enterStep()
	}
	return m.handleStepJump(msg)
}

// handleStepJump lets the number keys select any stepper entry.
func (m *WizardModel) handleStepJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '0'+byte(len(wizard.Steps)) {
		return m, nil
	}
	m.session.GoTo(m.ctx, wizard.Step(s[0]-'1'))
	return m, m.enterStep()
}

func (m *WizardModel) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m, m.focusField(m.focus + 1)
	case "shift+tab", "up":
		return m, m.focusField(m.focus - 1)
	case "ctrl+s", "enter":
		notice := m.save()
		cmd := m.enterStep()
		m.notice = notice
		return m, cmd
	}

	if len(m.fields) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	f := &m.fields[m.focus]
	f.input, cmd = f.input.Update(msg)
	m.applyField(*f)
	return m, cmd
}

// applyField pushes a field's current text into the session draft.
func (m *WizardModel) applyField(f inputField) {
	value := carbon.ParseQuantity(f.input.Value())
	if m.session.Step() == wizard.StepOffsets {
		_, m.err = m.session.SetOffset(f.key, value)
		return
	}
	_, m.err = m.session.SetActivity(f.key, value)
}

// save commits the active step's drafts and returns the notice to show.
func (m *WizardModel) save() string {
	log := logging.FromContext(m.ctx)
	switch m.session.Step() {
	case wizard.StepDataInput:
		totals := m.session.SaveInputs(m.ctx)
		log.Debug().Float64("emissions", totals.Emissions).Msg("inputs saved")
		return "Inputs saved: " + report.Tonnes(totals.Emissions)
	case wizard.StepOffsets:
		totals := m.session.SaveOffsets(m.ctx)
		log.Debug().Float64("offsets", totals.Offsets).Float64("gap", totals.Gap).Msg("offsets saved")
		return "Offsets saved: " + report.Tonnes(totals.Offsets)
	case wizard.StepCategory, wizard.StepGapAnalysis, wizard.StepVisualize, wizard.StepReport:
	}
	return ""
}

func (m *WizardModel) downloadReport() {
	path, err := report.Write(m.reportDir, m.reportData(), m.now())
	if err != nil {
		m.err = err
		logging.FromContext(m.ctx).Error().Err(err).Msg("writing report failed")
		return
	}
	m.notice = "Report saved to " + path
	logging.FromContext(m.ctx).Info().Str("path", path).Msg("report written")
}

// enterStep rebuilds per-step state after the active step changes.
func (m *WizardModel) enterStep() tea.Cmd {
	m.notice = ""
	m.fields = nil
	m.focus = 0

	switch m.session.Step() {
	case wizard.StepCategory:
		for i, c := range carbon.Categories {
			if c == m.session.Category() {
				m.categoryCursor = i
			}
		}
	case wizard.StepDataInput:
		drafts := m.session.DraftInputs()
		for _, f := range m.session.Category().Activities() {
			m.fields = append(m.fields, newField(f.Key, f.Label, f.Unit, drafts[f.Key]))
		}
	case wizard.StepOffsets:
		drafts := m.session.DraftOffsets()
		for _, k := range carbon.OffsetKinds {
			m.fields = append(m.fields, newField(k.Key, k.Label, carbon.TonnesUnit, drafts[k.Key]))
		}
	case wizard.StepGapAnalysis, wizard.StepVisualize, wizard.StepReport:
	}

	return m.focusField(0)
}

func (m *WizardModel) focusField(i int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	i = (i + len(m.fields)) % len(m.fields)

	m.fields[m.focus].input.Blur()
	m.focus = i
	return m.fields[m.focus].input.Focus()
}

func newField(key, label, unit string, value float64) inputField {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = fieldCharLimit
	ti.Width = fieldWidth
	ti.Prompt = ""
	if value != 0 {
		ti.SetValue(strconv.FormatFloat(value, 'f', -1, 64))
	}
	return inputField{key: key, label: label, unit: unit, input: ti}
}

func (m *WizardModel) reportData() report.Data {
	return report.Data{
		Category: m.session.Category(),
		Inputs:   m.session.Inputs(),
		Offsets:  m.session.Offsets(),
		Totals:   m.session.Totals(),
	}
}

func (m *WizardModel) chartData() chart.Data {
	return chart.Data{
		Category: m.session.Category(),
		Inputs:   m.session.Inputs(),
		Offsets:  m.session.Offsets(),
		Totals:   m.session.Totals(),
	}
}

// chartWidth sizes chart bars to the terminal.
func (m *WizardModel) chartWidth() int {
	return max(m.width-chartMargin, chart.MinBarWidth)
}
