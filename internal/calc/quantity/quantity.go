// Package quantity holds the plain value types every calculator result is
// flattened into for tables, charts and exports.
package quantity

import "math"

// Line is one tabular row: a labelled amount with its unit.
type Line struct {
	Label    string  `json:"label"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Point is one chart datum.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Section groups lines under a heading for reports and spreadsheets.
type Section struct {
	Heading string `json:"heading"`
	Lines   []Line `json:"lines"`
}

// Materials is the common cement/sand/aggregate/water breakdown, in kg.
type Materials struct {
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
	Water     float64 `json:"water"`
}

// MaterialLines flattens m with the given unit.
func MaterialLines(m Materials, unit string) []Line {
	return []Line{
		{Label: "Cement", Quantity: m.Cement, Unit: unit},
		{Label: "Sand", Quantity: m.Sand, Unit: unit},
		{Label: "Aggregate", Quantity: m.Aggregate, Unit: unit},
		{Label: "Water", Quantity: m.Water, Unit: unit},
	}
}

// Points converts lines to chart points, dropping units.
func Points(lines []Line) []Point {
	out := make([]Point, 0, len(lines))
	for _, l := range lines {
		out = append(out, Point{Label: l.Label, Value: l.Quantity})
	}
	return out
}

// Clean maps NaN and infinities to 0 so evaluators stay total.
func Clean(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Table is the flattened form calculators return next to their result.
type Table struct {
	Lines  []Line  `json:"lines"`
	Points []Point `json:"points"`
}
