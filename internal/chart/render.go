package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar drawing characters.
const (
	barFilledChar = "█"
	barEmptyChar  = "░"
)

// Width bounds for rendered bars.
const (
	MinBarWidth     = 10
	DefaultBarWidth = 30
)

// NoDataText is shown for charts whose values are all zero.
const NoDataText = "No data to display"

const percentScale = 100

//nolint:gochecknoglobals // Shared styles.
var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// Render draws c as horizontal bars scaled to its largest value. Pie charts
// also show each slice's share of the total.
func Render(c Config, width int) string {
	if width < MinBarWidth {
		width = MinBarWidth
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(c.Title))
	sb.WriteString("\n")

	highest := c.Max()
	if highest <= 0 {
		sb.WriteString(mutedStyle.Render("  " + NoDataText))
		return sb.String()
	}

	labelWidth := 0
	for _, s := range c.Series {
		for _, p := range s.Data {
			labelWidth = max(labelWidth, lipgloss.Width(rowLabel(c, s, p)))
		}
	}

	total := c.Total()
	rows := make([]string, 0)
	for si, s := range c.Series {
		for pi, p := range s.Data {
			color := s.Color
			if color == "" {
				color = pointColor(c, pi, si)
			}
			label := rowLabel(c, s, p)
			line := fmt.Sprintf("  %s%s  %s  %s",
				labelStyle.Render(label),
				strings.Repeat(" ", labelWidth-lipgloss.Width(label)),
				bar(p.Value/highest, width, color),
				formatValue(c, p.Value, total),
			)
			rows = append(rows, line)
		}
	}
	sb.WriteString(strings.Join(rows, "\n"))
	return sb.String()
}

// RenderAll draws every chart separated by a blank line.
func RenderAll(charts []Config, width int) string {
	parts := make([]string, 0, len(charts))
	for _, c := range charts {
		parts = append(parts, Render(c, width))
	}
	return strings.Join(parts, "\n\n")
}

func rowLabel(c Config, s Series, p Point) string {
	if len(c.Series) > 1 {
		return s.Name + " / " + p.Label
	}
	return p.Label
}

func pointColor(c Config, pointIndex, seriesIndex int) string {
	if pointIndex < len(c.Colors) && len(c.Series) == 1 {
		return c.Colors[pointIndex]
	}
	return ColorFor("", pointIndex+seriesIndex)
}

// bar draws one row. fraction is clamped to [0, 1].
func bar(fraction float64, width int, color string) string {
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	fraction = min(fraction, 1)
	width = max(width, 0)

	filled := int(fraction * float64(width))
	if fraction > 0 && filled == 0 {
		filled = 1
	}
	filled = min(filled, width)

	filledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return filledStyle.Render(strings.Repeat(barFilledChar, filled)) +
		emptyStyle.Render(strings.Repeat(barEmptyChar, width-filled))
}

func formatValue(c Config, v, total float64) string {
	value := strconv.FormatFloat(v, 'f', 2, 64)
	if c.ChartType == TypePie && total > 0 {
		return fmt.Sprintf("%s (%.1f%%)", value, v/total*percentScale)
	}
	return value
}
