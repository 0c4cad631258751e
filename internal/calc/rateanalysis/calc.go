package rateanalysis

import (
	"strings"

	"Buildcalc/internal/calc/quantity"
)

type Category string

const (
	Material  Category = "material"
	Labor     Category = "labor"
	Machinery Category = "machinery"
	Overhead  Category = "overhead"
)

// Categories is the fixed reporting order.
var Categories = []Category{Material, Labor, Machinery, Overhead}

type Item struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Unit        string   `json:"unit"`
	Rate        float64  `json:"rate"`
	Quantity    float64  `json:"quantity"`
}

type Input struct {
	Items          []Item  `json:"items"`
	ProfitPercent  float64 `json:"profit_percent"`
	OutputQuantity float64 `json:"output_quantity"`
	OutputUnit     string  `json:"output_unit"`
}

type CategoryTotal struct {
	Category Category `json:"category"`
	Items    int      `json:"items"`
	Total    float64  `json:"total"`
}

type Result struct {
	Categories  []CategoryTotal `json:"categories"`
	Ignored     int             `json:"ignored"`
	GrandTotal  float64         `json:"grand_total"`
	Profit      float64         `json:"profit"`
	TotalCost   float64         `json:"total_cost"`
	RatePerUnit float64         `json:"rate_per_unit"`
	OutputUnit  string          `json:"output_unit,omitempty"`
}

func normalize(c Category) Category {
	switch strings.ToLower(strings.TrimSpace(string(c))) {
	case "material", "materials":
		return Material
	case "labor", "labour":
		return Labor
	case "machinery", "equipment":
		return Machinery
	case "overhead", "overheads":
		return Overhead
	}
	return ""
}

// Calculate sums rate×quantity per category. Items outside the four
// categories are counted in Ignored and left out of every total.
func Calculate(in Input) (Result, error) {
	totals := make(map[Category]*CategoryTotal, len(Categories))
	res := Result{Categories: make([]CategoryTotal, 0, len(Categories)), OutputUnit: in.OutputUnit}
	for _, c := range Categories {
		totals[c] = &CategoryTotal{Category: c}
	}
	for _, it := range in.Items {
		t, ok := totals[normalize(it.Category)]
		if !ok {
			res.Ignored++
			continue
		}
		t.Items++
		t.Total += quantity.Clean(it.Rate) * quantity.Clean(it.Quantity)
	}
	for _, c := range Categories {
		res.Categories = append(res.Categories, *totals[c])
		res.GrandTotal += totals[c].Total
	}
	res.Profit = res.GrandTotal * quantity.Clean(in.ProfitPercent) / 100
	res.TotalCost = res.GrandTotal + res.Profit
	if out := quantity.Clean(in.OutputQuantity); out > 0 {
		res.RatePerUnit = res.TotalCost / out
	}
	return res, nil
}

// Total returns the total of one category.
func Total(res Result, c Category) float64 {
	for _, t := range res.Categories {
		if t.Category == c {
			return t.Total
		}
	}
	return 0
}

func Lines(res Result) []quantity.Line {
	lines := make([]quantity.Line, 0, len(res.Categories)+3)
	for _, t := range res.Categories {
		lines = append(lines, quantity.Line{Label: strings.ToUpper(string(t.Category[:1])) + string(t.Category[1:]), Quantity: t.Total})
	}
	lines = append(lines,
		quantity.Line{Label: "Grand total", Quantity: res.GrandTotal},
		quantity.Line{Label: "Profit", Quantity: res.Profit},
		quantity.Line{Label: "Total cost", Quantity: res.TotalCost},
	)
	if res.RatePerUnit > 0 {
		lines = append(lines, quantity.Line{Label: "Rate per unit", Quantity: res.RatePerUnit, Unit: res.OutputUnit})
	}
	return lines
}

// Points is the category split chart.
func Points(res Result) []quantity.Point {
	return quantity.Points(Lines(res)[:len(res.Categories)])
}
