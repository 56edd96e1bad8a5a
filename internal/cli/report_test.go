package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/emetricx/internal/chart"
	"github.com/rshade/emetricx/internal/cli"
	"github.com/rshade/emetricx/internal/report"
	"github.com/rshade/emetricx/internal/storage"
	"github.com/rshade/emetricx/internal/wizard"
)

// saveReferenceState stores the Organization reference scenario as wizard state.
func saveReferenceState(t *testing.T) {
	t.Helper()
	_, _, err := execute(t, "totals", "--save", "--category", "Organization",
		"--electricity", "100", "--transport", "50", "--fuel", "20", "--waste", "10",
		"--afforestation", "100", "--renewables", "50", "--carbon-credits", "20")
	require.NoError(t, err)
}

func TestReport_Stdout(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)

	out, _, err := execute(t, "report", "--stdout")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, report.Title, lines[0])
	assert.Contains(t, out, "Category: Organization")
	assert.Contains(t, out, "- Emissions: 264.00 t")
	assert.Contains(t, out, "- Offsets: 170.00 t")
	assert.Contains(t, out, "- Neutrality Gap: 94.00 t")
	assert.Contains(t, out, "- Electricity: 100 kWh")
	assert.Contains(t, out, "- Carbon Credits: 20 t")
	assert.NotContains(t, out, "Coal Transport")
	assert.Contains(t, out, "Decision Insights:")
}

func TestReport_WritesFile(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)
	dir := filepath.Join(t.TempDir(), "reports")

	out, _, err := execute(t, "report", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^emetricx-report-\d+\.txt$`, entries[0].Name())

	body, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(body), "- Neutrality Gap: 94.00 t")
}

func TestReport_JSON(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)

	out, _, err := execute(t, "report", "--output", "json")
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, report.Title, doc.Title)
	assert.Equal(t, "Organization", doc.Category)
	assert.InDelta(t, 94.0, doc.Totals.Gap, 1e-9)
	assert.Len(t, doc.Inputs, 4)
}

func TestReport_FreshStateUsesZeros(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "report", "--stdout")
	require.NoError(t, err)
	assert.Contains(t, out, "Category: -")
	assert.Contains(t, out, "- Emissions: 0.00 t")
	assert.Contains(t, out, "Status: No emissions recorded")
}

func TestReport_EphemeralIgnoresSavedState(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)

	out, _, err := execute(t, "report", "--stdout", "--ephemeral")
	require.NoError(t, err)
	assert.Contains(t, out, "- Emissions: 0.00 t")
}

func TestChart_Text(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)

	out, _, err := execute(t, "chart", "--width", "20")
	require.NoError(t, err)

	for _, title := range []string{
		chart.TitleEmissionSources, chart.TitleOffsets,
		chart.TitlePathToNeutrality, chart.TitleGapAnalysis,
	} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "Electricity")
	assert.Contains(t, out, "Afforestation")
}

func TestChart_JSON(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)

	out, _, err := execute(t, "chart", "--output", "json")
	require.NoError(t, err)

	var charts []chart.Config
	require.NoError(t, json.Unmarshal([]byte(out), &charts))
	require.Len(t, charts, 4)
	assert.Equal(t, chart.TypePie, charts[0].ChartType)
	assert.Equal(t, chart.TitleGapAnalysis, charts[3].Title)
}

func TestChart_CorruptStoredTotals(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()

	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(wizard.StorageKey, []byte(
		`{"category":"Organization","inputs":{"waste":10},"totals":{"emissions":-5,"offsets":10,"gap":-7}}`)))

	out, _, err := execute(t, "chart", "--state-dir", dir, "--output", "json")
	require.NoError(t, err)

	var charts []chart.Config
	require.NoError(t, json.Unmarshal([]byte(out), &charts))
	gap := charts[3].Series[0].Data
	assert.InDelta(t, 17.0, gap[0].Value, 1e-9, "emissions recomputed from inputs")
	assert.InDelta(t, 17.0, gap[2].Value, 1e-9)

	_, _, err = execute(t, "chart", "--state-dir", dir)
	require.NoError(t, err)
}

func TestChart_WidthTooSmall(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "chart", "--width", "3")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestExport_WritesThreeFiles(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)
	dir := t.TempDir()

	out, _, err := execute(t, "export", "--dir", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
		assert.Contains(t, out, e.Name())
	}
	assert.Regexp(t, `^emetricx-charts-\d+\.json$`, names[0])
	assert.Regexp(t, `^emetricx-report-\d+\.json$`, names[1])
	assert.Regexp(t, `^emetricx-report-\d+\.txt$`, names[2])

	body, err := os.ReadFile(filepath.Join(dir, names[0]))
	require.NoError(t, err)
	var charts []chart.Config
	require.NoError(t, json.Unmarshal(body, &charts))
	assert.Len(t, charts, 4)
}

func TestStateReset(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)

	out, _, err := execute(t, "state", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Wizard state cleared")

	out, _, err = execute(t, "state", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Category: -")
	assert.Contains(t, out, "Step:     Category")
}

func TestStateShow_JSON(t *testing.T) {
	setupCLITest(t)
	saveReferenceState(t)

	out, _, err := execute(t, "state", "show", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"category": "Organization"`)
	assert.Contains(t, out, `"version": "1.0.0"`)
}

func TestStateDirFlag(t *testing.T) {
	setupCLITest(t)
	dir := t.TempDir()

	_, _, err := execute(t, "totals", "--save", "--waste", "10", "--state-dir", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	out, _, err := execute(t, "state", "show", "--state-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "File:     "+filepath.Join(dir, "carbonData.json"))
}
