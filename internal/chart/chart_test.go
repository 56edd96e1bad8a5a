package chart

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/emetricx/internal/carbon"
)

func sampleData(category carbon.Category) Data {
	return Data{
		Category: category,
		Inputs: carbon.ActivityInputs{
			carbon.KeyElectricity:   100,
			carbon.KeyTransport:     50,
			carbon.KeyFuel:          20,
			carbon.KeyWaste:         10,
			carbon.KeyCoalTransport: 10,
		},
		Offsets: carbon.OffsetInputs{
			carbon.KeyAfforestation: 100,
			carbon.KeyRenewables:    50,
			carbon.KeyCarbonCredits: 20,
		},
		Totals: carbon.Totals{Emissions: 264, Offsets: 170, Gap: 94},
	}
}

func labels(s Series) []string {
	out := make([]string, 0, len(s.Data))
	for _, p := range s.Data {
		out = append(out, p.Label)
	}
	return out
}

func TestBuild_Order(t *testing.T) {
	charts := Build(sampleData(carbon.CategoryOrganization))
	require.Len(t, charts, 4)

	assert.Equal(t, TitleEmissionSources, charts[0].Title)
	assert.Equal(t, TypePie, charts[0].ChartType)
	assert.Equal(t, TitleOffsets, charts[1].Title)
	assert.Equal(t, TypePie, charts[1].ChartType)
	assert.Equal(t, TitlePathToNeutrality, charts[2].Title)
	assert.Equal(t, TypeLine, charts[2].ChartType)
	assert.Equal(t, TitleGapAnalysis, charts[3].Title)
	assert.Equal(t, TypeBar, charts[3].ChartType)
}

func TestEmissionSources_Category(t *testing.T) {
	org := Build(sampleData(carbon.CategoryOrganization))[0]
	assert.Equal(t, []string{"Electricity", "Transport", "Fuel", "Waste"}, labels(org.Series[0]))

	mining := Build(sampleData(carbon.CategoryMining))[0]
	assert.Equal(t, []string{"Electricity", "Transport", "Fuel", "Waste", "Coal Transport"}, labels(mining.Series[0]))
	assert.InDelta(t, 190.0, mining.Total(), 1e-9)
	assert.Equal(t, Palette[4], mining.Colors[4])
}

func TestOffsetsChart(t *testing.T) {
	c := Build(sampleData(carbon.CategoryOrganization))[1]
	assert.Equal(t, []string{"Afforestation", "Renewables", "Credits"}, labels(c.Series[0]))
	assert.InDelta(t, 170.0, c.Total(), 1e-9)
}

func TestPathToNeutrality(t *testing.T) {
	c := Build(sampleData(carbon.CategoryOrganization))[2]
	require.Len(t, c.Series, 2)

	emissions, offsets := c.Series[0], c.Series[1]
	assert.Equal(t, "Emissions", emissions.Name)
	assert.Equal(t, []Point{{"Current", 264}, {"Target", 0}}, emissions.Data)
	assert.Equal(t, "Offsets", offsets.Name)
	assert.Equal(t, []Point{{"Current", 170}, {"Target", 264}}, offsets.Data)
}

func TestGapAnalysisChart(t *testing.T) {
	c := Build(sampleData(carbon.CategoryOrganization))[3]
	assert.Equal(t, []Point{{"Emissions", 264}, {"Offsets", 170}, {"Gap", 94}}, c.Series[0].Data)
	assert.Equal(t, []string{Palette[0], Palette[1], Palette[2]}, c.Colors)
}

func TestBuild_InvalidInputsChartAsZero(t *testing.T) {
	c := Build(Data{Inputs: carbon.ActivityInputs{carbon.KeyFuel: -3}})[0]
	assert.InDelta(t, 0.0, c.Total(), 0)
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, Palette[0], ColorFor("Electricity", 3))
	assert.Equal(t, Palette[2], ColorFor("Gap", 0))
	assert.Equal(t, Palette[1], ColorFor("Unknown", 6), "unknown labels cycle the palette")
	assert.Equal(t, Palette[1], ColorFor("Unknown", -1))
}

func TestRender(t *testing.T) {
	c := Build(sampleData(carbon.CategoryOrganization))[3]
	out := Render(c, 20)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], TitleGapAnalysis)
	assert.Contains(t, lines[1], strings.Repeat(barFilledChar, 20), "largest value fills the bar")
	assert.Contains(t, lines[1], "264.00")
	assert.Contains(t, lines[3], "94.00")

	offsets := map[int]bool{}
	for _, l := range lines[1:] {
		offsets[strings.IndexAny(l, barFilledChar+barEmptyChar)] = true
	}
	assert.Len(t, offsets, 1, "bars start in the same column")
}

func TestRender_PieShowsShare(t *testing.T) {
	out := Render(Build(sampleData(carbon.CategoryOrganization))[1], DefaultBarWidth)
	assert.Contains(t, out, "100.00 (58.8%)")
}

func TestRender_LineUsesSeriesNames(t *testing.T) {
	out := Render(Build(sampleData(carbon.CategoryOrganization))[2], DefaultBarWidth)
	assert.Contains(t, out, "Offsets / Target")
	assert.Contains(t, out, "Emissions / Current")
}

func TestRender_NoData(t *testing.T) {
	out := Render(Build(Data{})[3], 5)
	assert.Contains(t, out, NoDataText)
}

func TestRender_SmallValueStillVisible(t *testing.T) {
	c := Config{Title: "x", ChartType: TypeBar, Series: []Series{{Data: []Point{{"big", 1000}, {"tiny", 1}}}}}
	out := Render(c, MinBarWidth)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], barFilledChar)
}

func TestRender_NegativeValuesDrawEmptyBars(t *testing.T) {
	c := gapAnalysis(carbon.Totals{Emissions: -5, Offsets: 10, Gap: -7})

	var out string
	require.NotPanics(t, func() { out = Render(c, MinBarWidth) })

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], strings.Repeat(barEmptyChar, MinBarWidth), "negative emissions draw nothing")
	assert.Contains(t, lines[2], strings.Repeat(barFilledChar, MinBarWidth))
	assert.Contains(t, lines[3], strings.Repeat(barEmptyChar, MinBarWidth))
}

func TestBar_ClampsFraction(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		filled   int
	}{
		{"negative", -0.5, 0},
		{"NaN", math.NaN(), 0},
		{"above one", 3, MinBarWidth},
		{"half", 0.5, MinBarWidth / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out string
			require.NotPanics(t, func() { out = bar(tt.fraction, MinBarWidth, "#ffffff") })
			assert.Equal(t, tt.filled, strings.Count(out, barFilledChar))
			assert.Equal(t, MinBarWidth-tt.filled, strings.Count(out, barEmptyChar))
		})
	}
}

func TestRenderAll(t *testing.T) {
	out := RenderAll(Build(sampleData(carbon.CategoryMining)), DefaultBarWidth)
	for _, title := range []string{TitleEmissionSources, TitleOffsets, TitlePathToNeutrality, TitleGapAnalysis} {
		assert.Contains(t, out, title)
	}
}
