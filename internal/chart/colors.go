package chart

// Palette is the ordered chart colour set.
//
//nolint:gochecknoglobals // Read-only palette.
var Palette = []string{"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6"}

// labelColors pins each known label to a palette slot so a label keeps its
// colour across charts.
//
//nolint:gochecknoglobals // Read-only lookup table.
var labelColors = map[string]int{
	"Electricity":    0,
	"Transport":      1,
	"Fuel":           2,
	"Waste":          3,
	"Coal Transport": 4,
	"Emissions":      0,
	"Offsets":        1,
	"Gap":            2,
}

// ColorFor returns the colour for label, cycling the palette by index for
// labels without a fixed colour.
func ColorFor(label string, index int) string {
	if slot, ok := labelColors[label]; ok {
		return Palette[slot]
	}
	if index < 0 {
		index = -index
	}
	return Palette[index%len(Palette)]
}

func colorsFor(points []Point) []string {
	colors := make([]string, len(points))
	for i, p := range points {
		colors[i] = ColorFor(p.Label, i)
	}
	return colors
}
