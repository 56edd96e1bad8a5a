package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/emetricx/internal/carbon"
	"github.com/rshade/emetricx/internal/chart"
	"github.com/rshade/emetricx/internal/greenops"
	"github.com/rshade/emetricx/internal/report"
	"github.com/rshade/emetricx/internal/wizard"
)

// labelColumnWidth aligns field labels on the input steps.
const labelColumnWidth = 26

// View renders the current view.
func (m *WizardModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderWizardHeader(m.session.Category()))
	sb.WriteString("\n\n")
	sb.WriteString(RenderStepper(m.session.Step()))
	sb.WriteString("\n\n")

	switch m.session.Step() {
	case wizard.StepCategory:
		sb.WriteString(m.renderCategory())
	case wizard.StepDataInput:
		sb.WriteString(m.renderFields("Activity Data",
			"Estimated CO2e: "+ValueStyle.Render(m.session.LiveEstimate()+" "+carbon.TonnesUnit)))
	case wizard.StepOffsets:
		total := carbon.SumOffsets(m.session.DraftOffsets())
		sb.WriteString(m.renderFields("Carbon Sinks & Offsets",
			"Total offsets: "+ValueStyle.Render(report.Tonnes(total))))
	case wizard.StepGapAnalysis:
		sb.WriteString(RenderGapAnalysis(m.session.Totals()))
	case wizard.StepVisualize:
		sb.WriteString(SectionStyle.Render("Visualization"))
		sb.WriteString("\n\n")
		sb.WriteString(chart.RenderAll(chart.Build(m.chartData()), m.chartWidth()))
	case wizard.StepReport:
		sb.WriteString(SectionStyle.Render("Summary Report"))
		sb.WriteString("\n\n")
		sb.WriteString(PanelStyle.Render(report.Build(m.reportData(), m.now())))
	}

	sb.WriteString("\n\n")
	if m.err != nil {
		sb.WriteString(ErrorStyle.Render(fmt.Sprintf("%s %v", IconWarning, m.err)))
		sb.WriteString("\n")
	} else if m.notice != "" {
		sb.WriteString(OKStyle.Render(IconCheck + " " + m.notice))
		sb.WriteString("\n")
	}
	sb.WriteString(RenderWizardHelp(m.session.Step()))
	return sb.String()
}

// RenderWizardHeader renders the application title and current category.
func RenderWizardHeader(category carbon.Category) string {
	return TitleStyle.Render("E-METRICX") + "  " +
		LabelStyle.Render("Category: ") + ValueStyle.Render(category.DisplayName())
}

// RenderStepper renders the six step titles styled as active, done or pending.
func RenderStepper(active wizard.Step) string {
	parts := make([]string, 0, len(wizard.Steps))
	for i, s := range wizard.Steps {
		title := fmt.Sprintf("%d %s", i+1, s.Title())
		switch {
		case s == active:
			parts = append(parts, StepActiveStyle.Render(title))
		case s < active:
			parts = append(parts, StepDoneStyle.Render(IconCheck+" "+title))
		default:
			parts = append(parts, StepPendingStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *WizardModel) renderCategory() string {
	var sb strings.Builder
	sb.WriteString(SectionStyle.Render("Select your category"))
	sb.WriteString("\n\n")

	for i, c := range carbon.Categories {
		cursor := " "
		if i == m.categoryCursor {
			cursor = IconCursor
		}
		mark := IconOpen
		if c == m.session.Category() {
			mark = IconSelected
		}
		line := fmt.Sprintf("%s %s %s", cursor, mark, c)
		if i == m.categoryCursor {
			line = ValueStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m *WizardModel) renderFields(title, summary string) string {
	var sb strings.Builder
	sb.WriteString(SectionStyle.Render(title))
	sb.WriteString("\n\n")

	for i, f := range m.fields {
		cursor := " "
		if i == m.focus {
			cursor = IconCursor
		}
		label := fmt.Sprintf("%s (%s)", f.label, unitLabel(f.unit))
		sb.WriteString(fmt.Sprintf("%s %s%s %s\n",
			cursor,
			LabelStyle.Render(label),
			strings.Repeat(" ", max(labelColumnWidth-lipgloss.Width(label), 1)),
			f.input.View(),
		))
	}

	sb.WriteString("\n")
	sb.WriteString(summary)
	return sb.String()
}

// RenderGapAnalysis renders the three totals, the neutrality status and the
// equivalency lines.
func RenderGapAnalysis(t carbon.Totals) string {
	var sb strings.Builder
	sb.WriteString(SectionStyle.Render("Neutrality Gap Analysis"))
	sb.WriteString("\n\n")

	stats := []string{
		renderStat("Total Emissions", report.Tonnes(t.Emissions)),
		renderStat("Total Offsets", report.Tonnes(t.Offsets)),
		renderStat("Neutrality Gap", report.Tonnes(t.Gap)),
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	sb.WriteString("\n\n")

	switch t.Status() {
	case carbon.StatusNeutral:
		sb.WriteString(OKStyle.Render(IconCheck + " " + t.Status().String()))
	case carbon.StatusGapRemains:
		sb.WriteString(WarningStyle.Render(IconWarning + " " + t.Status().String()))
	case carbon.StatusNoEmissions:
		sb.WriteString(HelpStyle.Render(t.Status().String()))
	}

	summary := greenops.ForTotals(t)
	for _, text := range []string{summary.EmissionsText, summary.GapText} {
		if text != "" {
			sb.WriteString("\n")
			sb.WriteString(LabelStyle.Render(text))
		}
	}
	return sb.String()
}

func renderStat(label, value string) string {
	return PanelStyle.Render(LabelStyle.Render(label) + "\n" + ValueStyle.Render(value))
}

// RenderWizardHelp renders the shortcuts for the active step.
func RenderWizardHelp(step wizard.Step) string {
	var shortcuts []string
	switch step {
	case wizard.StepCategory:
		shortcuts = []string{"↑/↓: Choose", "Enter: Select", "1-6: Jump"}
	case wizard.StepDataInput, wizard.StepOffsets:
		shortcuts = []string{"Tab/Shift+Tab: Field", "Enter/Ctrl+S: Save & Continue"}
	case wizard.StepGapAnalysis, wizard.StepVisualize:
		shortcuts = []string{"Enter: Continue", "1-6: Jump"}
	case wizard.StepReport:
		shortcuts = []string{"d: Download report", "1-6: Jump"}
	}
	shortcuts = append(shortcuts, "Ctrl+N/Ctrl+B: Next/Back", "Ctrl+R: Reset", "Esc: Quit")
	return HelpStyle.Render(strings.Join(shortcuts, " | "))
}

func unitLabel(unit string) string {
	if unit == carbon.TonnesUnit {
		return "t CO2e"
	}
	return unit
}
