package barbending

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"

	"Buildcalc/internal/calc/quantity"
)

// WeightDivisor is the d²/162 steel weight rule. The schedule applies it to
// millimeter lengths as-is.
const WeightDivisor = 162.0

// BendAllowance is the extra length per bend, in bar diameters.
const BendAllowance = 4.0

const ShapeStraight = "Straight"

type Item struct {
	ElementType  string  `json:"element_type"`
	BarType      string  `json:"bar_type"`
	Diameter     float64 `json:"diameter"`    // mm
	Length       float64 `json:"length"`      // mm
	Quantity     int     `json:"quantity"`
	Bends        int     `json:"bends"`
	ClearCover   float64 `json:"clear_cover"` // mm
	BendingShape string  `json:"bending_shape"`
}

type ItemResult struct {
	Item
	CuttingLength float64 `json:"cutting_length"`
	Weight        float64 `json:"weight"`
}

type DiameterTotal struct {
	Diameter      float64 `json:"diameter"`
	Bars          int     `json:"bars"`
	CuttingLength float64 `json:"cutting_length"`
	Weight        float64 `json:"weight"`
}

type Input struct {
	Items []Item `json:"items"`
}

// UnmarshalJSON rounds fractional quantity and bend counts to the nearest
// whole bar instead of rejecting the request.
func (in *Input) UnmarshalJSON(b []byte) error {
	type item struct {
		Item
		Quantity float64 `json:"quantity"`
		Bends    float64 `json:"bends"`
	}
	var raw struct {
		Items []item `json:"items"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	in.Items = make([]Item, 0, len(raw.Items))
	for _, r := range raw.Items {
		it := r.Item
		it.Quantity = int(math.Round(quantity.Clean(r.Quantity)))
		it.Bends = int(math.Round(quantity.Clean(r.Bends)))
		in.Items = append(in.Items, it)
	}
	return nil
}

type Result struct {
	Items              []ItemResult    `json:"items"`
	ByDiameter         []DiameterTotal `json:"by_diameter"`
	TotalBars          int             `json:"total_bars"`
	TotalCuttingLength float64         `json:"total_cutting_length"`
	TotalWeight        float64         `json:"total_weight"`
	Notes              string          `json:"notes"`
}

// CuttingLength is length minus cover on both ends, plus a 4d allowance per
// bend for anything that is not straight.
func CuttingLength(it Item) float64 {
	cl := quantity.Clean(it.Length) - 2*quantity.Clean(it.ClearCover)
	if !isStraight(it.BendingShape) {
		cl += float64(it.Bends) * BendAllowance * quantity.Clean(it.Diameter)
	}
	return cl
}

// Weight is (π·d²·cuttingLength/162)·quantity.
func Weight(it Item, cuttingLength float64) float64 {
	d := quantity.Clean(it.Diameter)
	return math.Pi * d * d * cuttingLength / WeightDivisor * float64(it.Quantity)
}

func isStraight(shape string) bool {
	s := strings.TrimSpace(shape)
	return s == "" || strings.EqualFold(s, ShapeStraight)
}

// Calculate evaluates every item independently, keeping input order, and
// totals the schedule per diameter.
func Calculate(in Input) (Result, error) {
	res := Result{
		Items: make([]ItemResult, 0, len(in.Items)),
		Notes: "Weight uses the d²/162 rule on millimeter lengths.",
	}
	byDia := map[float64]*DiameterTotal{}
	for _, it := range in.Items {
		cl := CuttingLength(it)
		w := Weight(it, cl)
		res.Items = append(res.Items, ItemResult{Item: it, CuttingLength: cl, Weight: w})

		d := quantity.Clean(it.Diameter)
		t, ok := byDia[d]
		if !ok {
			t = &DiameterTotal{Diameter: d}
			byDia[d] = t
		}
		t.Bars += it.Quantity
		t.CuttingLength += cl * float64(it.Quantity)
		t.Weight += w

		res.TotalBars += it.Quantity
		res.TotalCuttingLength += cl * float64(it.Quantity)
		res.TotalWeight += w
	}
	for _, t := range byDia {
		res.ByDiameter = append(res.ByDiameter, *t)
	}
	sort.Slice(res.ByDiameter, func(i, j int) bool {
		return res.ByDiameter[i].Diameter < res.ByDiameter[j].Diameter
	})
	return res, nil
}

// Lines gives one row per item plus the total.
func Lines(res Result) []quantity.Line {
	lines := make([]quantity.Line, 0, len(res.Items)+1)
	for _, it := range res.Items {
		label := strings.TrimSpace(it.ElementType + " " + it.BarType)
		if label == "" {
			label = "Bar"
		}
		lines = append(lines, quantity.Line{Label: label, Quantity: it.Weight, Unit: "kg"})
	}
	lines = append(lines, quantity.Line{Label: "Total", Quantity: res.TotalWeight, Unit: "kg"})
	return lines
}

// Points charts weight per diameter.
func Points(res Result) []quantity.Point {
	out := make([]quantity.Point, 0, len(res.ByDiameter))
	for _, t := range res.ByDiameter {
		out = append(out, quantity.Point{Label: formatDia(t.Diameter), Value: t.Weight})
	}
	return out
}

func formatDia(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64) + " mm"
}
