// Package chart builds the wizard's visualization configs and renders them as
// terminal bar charts.
package chart

import (
	"github.com/rshade/emetricx/internal/carbon"
)

// Chart types.
const (
	TypePie  = "pie"
	TypeLine = "line"
	TypeBar  = "bar"
)

// Chart titles in display order.
const (
	TitleEmissionSources  = "Emission Sources"
	TitleOffsets          = "Offsets"
	TitlePathToNeutrality = "Path to Neutrality"
	TitleGapAnalysis      = "Gap Analysis"
)

// Config describes one chart.
type Config struct {
	ChartType  string   `json:"chartType"`
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Series     []Series `json:"series"`
	Colors     []string `json:"colors,omitempty"`
	ShowLegend bool     `json:"showLegend"`
	ShowGrid   bool     `json:"showGrid"`
}

// Series is a named run of points.
type Series struct {
	Name  string  `json:"name"`
	Data  []Point `json:"data"`
	Color string  `json:"color,omitempty"`
}

// Point is a single labelled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Data is what the charts are built from.
type Data struct {
	Category carbon.Category
	Inputs   carbon.ActivityInputs
	Offsets  carbon.OffsetInputs
	Totals   carbon.Totals
}

// Total sums every point in the chart.
func (c Config) Total() float64 {
	total := 0.0
	for _, s := range c.Series {
		for _, p := range s.Data {
			total += p.Value
		}
	}
	return total
}

// Max returns the largest point value in the chart.
func (c Config) Max() float64 {
	highest := 0.0
	for _, s := range c.Series {
		for _, p := range s.Data {
			if p.Value > highest {
				highest = p.Value
			}
		}
	}
	return highest
}

// Build returns the four wizard charts in display order.
func Build(d Data) []Config {
	return []Config{
		emissionSources(d),
		offsets(d),
		pathToNeutrality(d.Totals),
		gapAnalysis(d.Totals),
	}
}

// emissionSources plots raw activity quantities. Coal transport appears for
// Mining only.
func emissionSources(d Data) Config {
	points := make([]Point, 0, len(carbon.EmissionFactors))
	for _, f := range d.Category.Activities() {
		points = append(points, Point{Label: f.Label, Value: d.Inputs.Get(f.Key)})
	}
	return pie(TitleEmissionSources, points)
}

func offsets(d Data) Config {
	points := []Point{
		{Label: "Afforestation", Value: d.Offsets.Get(carbon.KeyAfforestation)},
		{Label: "Renewables", Value: d.Offsets.Get(carbon.KeyRenewables)},
		{Label: "Credits", Value: d.Offsets.Get(carbon.KeyCarbonCredits)},
	}
	return pie(TitleOffsets, points)
}

// pathToNeutrality draws emissions falling to zero while offsets rise to
// meet them.
func pathToNeutrality(t carbon.Totals) Config {
	series := []Series{
		{
			Name:  "Emissions",
			Data:  []Point{{Label: "Current", Value: t.Emissions}, {Label: "Target", Value: 0}},
			Color: ColorFor("Emissions", 0),
		},
		{
			Name:  "Offsets",
			Data:  []Point{{Label: "Current", Value: t.Offsets}, {Label: "Target", Value: t.Emissions}},
			Color: ColorFor("Offsets", 1),
		},
	}
	return Config{
		ChartType:  TypeLine,
		Title:      TitlePathToNeutrality,
		XAxis:      "Stage",
		YAxis:      "t CO2e",
		Series:     series,
		Colors:     []string{series[0].Color, series[1].Color},
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func gapAnalysis(t carbon.Totals) Config {
	points := []Point{
		{Label: "Emissions", Value: t.Emissions},
		{Label: "Offsets", Value: t.Offsets},
		{Label: "Gap", Value: t.Gap},
	}
	return Config{
		ChartType:  TypeBar,
		Title:      TitleGapAnalysis,
		XAxis:      "Metric",
		YAxis:      "t CO2e",
		Series:     []Series{{Name: TitleGapAnalysis, Data: points}},
		Colors:     colorsFor(points),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func pie(title string, points []Point) Config {
	return Config{
		ChartType:  TypePie,
		Title:      title,
		Series:     []Series{{Name: title, Data: points}},
		Colors:     colorsFor(points),
		ShowLegend: true,
		ShowGrid:   false,
	}
}
