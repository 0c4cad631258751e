package concrete

import (
	"math"
	"strings"

	"Buildcalc/internal/calc/quantity"
	"Buildcalc/internal/units"
)

// Dry density of the cement fraction used for material take-off, kg/m3.
const CementDensity = 1440.0

const BagKg = 50.0

// Admixture prices as multiples of the cement price per kg.
const (
	PlasticizerCostFactor = 2.5
	RetarderCostFactor    = 3.0
	AcceleratorCostFactor = 4.0
)

type Mix struct {
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
	WCRatio   float64 `json:"wc_ratio"`
}

// Nominal mixes by grade.
var Grades = map[string]Mix{
	"M5":   {Cement: 1, Sand: 5, Aggregate: 10, WCRatio: 0.60},
	"M7.5": {Cement: 1, Sand: 4, Aggregate: 8, WCRatio: 0.60},
	"M10":  {Cement: 1, Sand: 3, Aggregate: 6, WCRatio: 0.55},
	"M15":  {Cement: 1, Sand: 2, Aggregate: 4, WCRatio: 0.50},
	"M20":  {Cement: 1, Sand: 1.5, Aggregate: 3, WCRatio: 0.50},
	"M25":  {Cement: 1, Sand: 1, Aggregate: 2, WCRatio: 0.45},
}

const DefaultGrade = "M20"

type Void struct {
	Count  float64 `json:"count"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Admixture struct {
	Enabled       bool    `json:"enabled"`
	DosagePercent float64 `json:"dosage_percent"`
}

type Admixtures struct {
	Plasticizer Admixture `json:"plasticizer"`
	Retarder    Admixture `json:"retarder"`
	Accelerator Admixture `json:"accelerator"`
}

// Costs are prices per kg.
type Costs struct {
	Cement    float64 `json:"cement"`
	Sand      float64 `json:"sand"`
	Aggregate float64 `json:"aggregate"`
	Water     float64 `json:"water"`
}

type Input struct {
	Length     float64    `json:"length"`
	Width      float64    `json:"width"`
	Thickness  float64    `json:"thickness"`
	Unit       string     `json:"unit"` // length unit of every dimension, default m
	Voids      []Void     `json:"voids"`
	Grade      string     `json:"grade"`
	Mix        *Mix       `json:"mix,omitempty"` // overrides Grade
	Admixtures Admixtures `json:"admixtures"`
	Costs      Costs      `json:"costs"`
}

type AdmixtureMasses struct {
	Plasticizer float64 `json:"plasticizer"`
	Retarder    float64 `json:"retarder"`
	Accelerator float64 `json:"accelerator"`
}

type CostBreakdown struct {
	Cement     float64 `json:"cement"`
	Sand       float64 `json:"sand"`
	Aggregate  float64 `json:"aggregate"`
	Water      float64 `json:"water"`
	Admixtures float64 `json:"admixtures"`
	Total      float64 `json:"total"`
}

type Result struct {
	GrossVolumeM3 float64            `json:"gross_volume_m3"`
	VoidVolumeM3  float64            `json:"void_volume_m3"`
	NetVolumeM3   float64            `json:"net_volume_m3"`
	NetVolumeFt3  float64            `json:"net_volume_ft3"`
	NetVolumeYd3  float64            `json:"net_volume_yd3"`
	Grade         string             `json:"grade"`
	Mix           Mix                `json:"mix"`
	Materials     quantity.Materials `json:"materials"`
	CementBags    float64            `json:"cement_bags"`
	Admixtures    AdmixtureMasses    `json:"admixtures"`
	Cost          CostBreakdown      `json:"cost"`
	Notes         string             `json:"notes"`
}

// Calculate estimates the net concrete volume and the material take-off.
// Net volume never goes below zero.
func Calculate(in Input) (Result, error) {
	notes := "Nominal-mix estimate on dry cement density 1440 kg/m3."
	factor, err := units.Default().Factor(units.Length, in.Unit)
	if err != nil {
		factor = 1
		if strings.TrimSpace(in.Unit) != "" {
			notes = "Unknown unit, dimensions taken as meters. " + notes
		}
	}
	cube := factor * factor * factor

	gross := quantity.Clean(in.Length) * quantity.Clean(in.Width) * quantity.Clean(in.Thickness) * cube
	voids := 0.0
	for _, v := range in.Voids {
		voids += quantity.Clean(v.Count) * quantity.Clean(v.Length) * quantity.Clean(v.Width) * quantity.Clean(v.Height) * cube
	}
	net := math.Max(gross-voids, 0)

	grade, mix := resolveMix(in)
	total := mix.Cement + mix.Sand + mix.Aggregate

	var m quantity.Materials
	if total > 0 {
		m.Cement = math.Ceil(net * CementDensity * mix.Cement / total)
	}
	m.Sand = math.Ceil(m.Cement * mix.Sand)
	m.Aggregate = math.Ceil(m.Cement * mix.Aggregate)
	m.Water = math.Ceil(m.Cement * mix.WCRatio)

	adm := AdmixtureMasses{
		Plasticizer: admixtureMass(in.Admixtures.Plasticizer, m.Cement),
		Retarder:    admixtureMass(in.Admixtures.Retarder, m.Cement),
		Accelerator: admixtureMass(in.Admixtures.Accelerator, m.Cement),
	}

	c := in.Costs
	cost := CostBreakdown{
		Cement:    m.Cement * quantity.Clean(c.Cement),
		Sand:      m.Sand * quantity.Clean(c.Sand),
		Aggregate: m.Aggregate * quantity.Clean(c.Aggregate),
		Water:     m.Water * quantity.Clean(c.Water),
	}
	cementPrice := quantity.Clean(c.Cement)
	cost.Admixtures = adm.Plasticizer*cementPrice*PlasticizerCostFactor +
		adm.Retarder*cementPrice*RetarderCostFactor +
		adm.Accelerator*cementPrice*AcceleratorCostFactor
	cost.Total = cost.Cement + cost.Sand + cost.Aggregate + cost.Water + cost.Admixtures

	return Result{
		GrossVolumeM3: gross,
		VoidVolumeM3:  voids,
		NetVolumeM3:   net,
		NetVolumeFt3:  net * 1000 / 28.316846592,
		NetVolumeYd3:  net * 1000 / 764.554857984,
		Grade:         grade,
		Mix:           mix,
		Materials:     m,
		CementBags:    m.Cement / BagKg,
		Admixtures:    adm,
		Cost:          cost,
		Notes:         notes,
	}, nil
}

func resolveMix(in Input) (string, Mix) {
	if in.Mix != nil {
		return "custom", Mix{
			Cement:    quantity.Clean(in.Mix.Cement),
			Sand:      quantity.Clean(in.Mix.Sand),
			Aggregate: quantity.Clean(in.Mix.Aggregate),
			WCRatio:   quantity.Clean(in.Mix.WCRatio),
		}
	}
	grade := strings.ToUpper(strings.TrimSpace(in.Grade))
	mix, ok := Grades[grade]
	if !ok {
		grade = DefaultGrade
		mix = Grades[DefaultGrade]
	}
	return grade, mix
}

func admixtureMass(a Admixture, cement float64) float64 {
	if !a.Enabled {
		return 0
	}
	return quantity.Clean(a.DosagePercent) / 100 * cement
}

// Lines flattens a result for tables and exports.
func Lines(res Result) []quantity.Line {
	lines := []quantity.Line{
		{Label: "Gross volume", Quantity: res.GrossVolumeM3, Unit: "m³"},
		{Label: "Void volume", Quantity: res.VoidVolumeM3, Unit: "m³"},
		{Label: "Net volume", Quantity: res.NetVolumeM3, Unit: "m³"},
	}
	lines = append(lines, quantity.MaterialLines(res.Materials, "kg")...)
	lines = append(lines,
		quantity.Line{Label: "Cement bags", Quantity: res.CementBags, Unit: "bags"},
		quantity.Line{Label: "Plasticizer", Quantity: res.Admixtures.Plasticizer, Unit: "kg"},
		quantity.Line{Label: "Retarder", Quantity: res.Admixtures.Retarder, Unit: "kg"},
		quantity.Line{Label: "Accelerator", Quantity: res.Admixtures.Accelerator, Unit: "kg"},
		quantity.Line{Label: "Total cost", Quantity: res.Cost.Total, Unit: ""},
	)
	return lines
}

// Points is the material chart.
func Points(res Result) []quantity.Point {
	return quantity.Points(quantity.MaterialLines(res.Materials, "kg"))
}
