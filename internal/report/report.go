// Package report renders the downloadable wizard summary.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/rshade/emetricx/internal/carbon"
	"github.com/rshade/emetricx/internal/greenops"
)

// Title heads every report.
const Title = "E-METRICX Report"

// dateLayout mirrors an en-US locale date-time string.
const dateLayout = "1/2/2006, 3:04:05 PM"

// Data is everything a report is built from.
type Data struct {
	Category carbon.Category
	Inputs   carbon.ActivityInputs
	Offsets  carbon.OffsetInputs
	Totals   carbon.Totals
}

// Build returns the plain-text report.
func Build(d Data, generatedAt time.Time) string {
	lines := []string{
		Title,
		"Date: " + generatedAt.Format(dateLayout),
		"",
		"Category: " + d.Category.DisplayName(),
		"",
		"Totals:",
		"- Emissions: " + Tonnes(d.Totals.Emissions),
		"- Offsets: " + Tonnes(d.Totals.Offsets),
		"- Neutrality Gap: " + Tonnes(d.Totals.Gap),
		"",
		"Inputs:",
	}

	for _, f := range d.Category.Activities() {
		lines = append(lines, fmt.Sprintf("- %s: %s %s", f.Label, Quantity(d.Inputs[f.Key]), f.Unit))
	}

	lines = append(lines, "", "Offsets:")
	for _, k := range carbon.OffsetKinds {
		lines = append(lines, fmt.Sprintf("- %s: %s %s", k.Label, Quantity(d.Offsets[k.Key]), carbon.TonnesUnit))
	}

	lines = append(lines, "", "Status: "+d.Totals.Status().String())

	summary := greenops.ForTotals(d.Totals)
	if summary.EmissionsText != "" {
		lines = append(lines, summary.EmissionsText)
	}
	if summary.GapText != "" {
		lines = append(lines, summary.GapText)
	}

	lines = append(lines, "", "Decision Insights:", d.Totals.Recommendation())
	return strings.Join(lines, "\n")
}

// Tonnes formats a CO2e amount with two decimals and a tonne suffix.
func Tonnes(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + " " + carbon.TonnesUnit
}

// Quantity formats a raw input value in its shortest exact form.
func Quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FileName returns the download file name for a report generated at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("emetricx-report-%d.txt", t.UnixMilli())
}

// Write saves the report under dir and returns the file path.
func Write(dir string, d Data, t time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	path := filepath.Join(dir, FileName(t))
	if err := os.WriteFile(path, []byte(Build(d, t)), 0o600); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// Document is the structured form of a report.
type Document struct {
	Title          string                `json:"title"`
	GeneratedAt    time.Time             `json:"generatedAt"`
	Category       string                `json:"category"`
	Totals         carbon.Totals         `json:"totals"`
	Status         string                `json:"status"`
	NetNegative    bool                  `json:"netNegative"`
	Inputs         []carbon.Contribution `json:"inputs"`
	Offsets        carbon.OffsetInputs   `json:"offsets"`
	Equivalencies  []string              `json:"equivalencies,omitempty"`
	Recommendation string                `json:"recommendation"`
}

// NewDocument assembles the structured report.
func NewDocument(d Data, t time.Time) Document {
	offsets := carbon.NewOffsetInputs()
	for k := range offsets {
		offsets[k] = d.Offsets.Get(k)
	}

	doc := Document{
		Title:          Title,
		GeneratedAt:    t.UTC(),
		Category:       d.Category.DisplayName(),
		Totals:         d.Totals,
		Status:         d.Totals.Status().String(),
		NetNegative:    d.Totals.NetNegative(),
		Inputs:         carbon.Contributions(d.Inputs, d.Category.IncludesMiningActivities()),
		Offsets:        offsets,
		Recommendation: d.Totals.Recommendation(),
	}

	summary := greenops.ForTotals(d.Totals)
	for _, text := range []string{summary.EmissionsText, summary.GapText} {
		if text != "" {
			doc.Equivalencies = append(doc.Equivalencies, text)
		}
	}
	return doc
}

// JSON returns the report as indented JSON.
func JSON(d Data, t time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(d, t), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return data, nil
}
