// Package mixdesign proportions a concrete mix per cubic meter by the absolute
// volume method.
//
// The water-cement ratio comes from an inverse-strength rule on the target
// mean strength, capped by the exposure class and floored at 0.35. Water is
// taken from a table by maximum aggregate size, corrected for aggregate shape
// and slump, and reduced by plasticizer. Cement follows from water and w/c,
// raised to the exposure minimum. What remains of the cubic meter after
// cement, water, admixture and air is aggregate, split coarse/fine by a
// size-dependent coarse fraction.
package mixdesign

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"Buildcalc/internal/calc/quantity"
)

var ErrInfeasibleMix = errors.New("infeasible mix")

// InfeasibleMixError is returned when cement, water, admixture and air
// already fill a cubic meter.
type InfeasibleMixError struct {
	VolumeSum float64
}

func (e *InfeasibleMixError) Error() string {
	return fmt.Sprintf("%v: cement, water, admixture and air occupy %.3f m3 per m3", ErrInfeasibleMix, e.VolumeSum)
}

func (e *InfeasibleMixError) Unwrap() error { return ErrInfeasibleMix }

type Exposure string

const (
	ExposureMild       Exposure = "mild"
	ExposureModerate   Exposure = "moderate"
	ExposureSevere     Exposure = "severe"
	ExposureVerySevere Exposure = "very_severe"
	ExposureMarine     Exposure = "marine"
)

type Admixture string

const (
	AdmixtureNone        Admixture = "none"
	AdmixtureRetarder    Admixture = "retarder"
	AdmixtureAccelerator Admixture = "accelerator"
)

const (
	MinWCRatio       = 0.35
	MinCementContent = 280.0
	MaxWaterCut      = 0.15
	PlasticizerCut   = 0.10 // water reduction per 1% dosage
	InverseStrengthK = 13.5 // w/c = K / target mean strength
	BagKg            = 50.0
)

const (
	defaultSlumpMM     = 75.0
	defaultMaxAggMM    = 20.0
	defaultCementSG    = 3.15
	defaultFineSG      = 2.65
	defaultCoarseSG    = 2.70
	defaultAdmixtureSG = 1.145
)

type Input struct {
	FckMPa             float64   `json:"fck_mpa"`
	StdDevMPa          float64   `json:"std_dev_mpa"`
	Exposure           Exposure  `json:"exposure"`
	MaxAggregateMM     float64   `json:"max_aggregate_mm"`
	AggregateShape     string    `json:"aggregate_shape"`
	SlumpMM            float64   `json:"slump_mm"`
	PlasticizerPercent float64   `json:"plasticizer_percent"`
	Admixture          Admixture `json:"admixture"`
	AdmixturePercent   float64   `json:"admixture_percent"`
	AirPercent         float64   `json:"air_percent"`
	CementSG           float64   `json:"cement_sg"`
	FineSG             float64   `json:"fine_sg"`
	CoarseSG           float64   `json:"coarse_sg"`
	AdmixtureSG        float64   `json:"admixture_sg"`
	VolumeM3           float64   `json:"volume_m3"`
}

type Volumes struct {
	Cement    float64 `json:"cement"`
	Water     float64 `json:"water"`
	Admixture float64 `json:"admixture"`
	Air       float64 `json:"air"`
	Aggregate float64 `json:"aggregate"`
}

type Proportion struct {
	Cement float64 `json:"cement"`
	Fine   float64 `json:"fine"`
	Coarse float64 `json:"coarse"`
	Water  float64 `json:"water"`
}

type StrengthPoint struct {
	Day     int     `json:"day"`
	MPa     float64 `json:"mpa"`
	Percent float64 `json:"percent"`
}

type Batch struct {
	VolumeM3    float64            `json:"volume_m3"`
	Materials   quantity.Materials `json:"materials"`
	AdmixtureKg float64            `json:"admixture_kg"`
	CementBags  float64            `json:"cement_bags"`
}

type Result struct {
	TargetMeanMPa  float64         `json:"target_mean_mpa"`
	WCRatio        float64         `json:"wc_ratio"`
	EffectiveWC    float64         `json:"effective_wc"`
	WaterKgM3      float64         `json:"water_kg_m3"`
	CementKgM3     float64         `json:"cement_kg_m3"`
	AdmixtureKgM3  float64         `json:"admixture_kg_m3"`
	FineKgM3       float64         `json:"fine_kg_m3"`
	CoarseKgM3     float64         `json:"coarse_kg_m3"`
	CoarseFraction float64         `json:"coarse_fraction"`
	Volumes        Volumes         `json:"volumes"`
	Proportion     Proportion      `json:"proportion"`
	RatioText      string          `json:"ratio_text"`
	Strength       []StrengthPoint `json:"strength"`
	Batch          Batch           `json:"batch"`
	Notes          string          `json:"notes"`
}

// Design proportions the mix. It fails only with *InfeasibleMixError.
func Design(in Input) (Result, error) {
	in = withDefaults(in)

	target := in.FckMPa + 1.65*in.StdDevMPa
	wc := waterCementRatio(target, in.Exposure)

	water := baseWater(in.MaxAggregateMM) + shapeAdjustment(in.AggregateShape)
	if in.SlumpMM > 50 {
		water *= 1 + 0.03*(in.SlumpMM-50)/25
	}
	if in.PlasticizerPercent > 0 {
		water *= 1 - math.Min(in.PlasticizerPercent*PlasticizerCut, MaxWaterCut)
	}

	cement := math.Max(water/wc, minCement(in.Exposure))
	admixture := (in.PlasticizerPercent + in.AdmixturePercent) / 100 * cement

	vol := Volumes{
		Cement:    cement / (in.CementSG * 1000),
		Water:     water / 1000,
		Admixture: admixture / (in.AdmixtureSG * 1000),
		Air:       in.AirPercent / 100,
	}
	sum := vol.Cement + vol.Water + vol.Admixture + vol.Air
	if sum >= 1.0 {
		return Result{}, &InfeasibleMixError{VolumeSum: sum}
	}
	vol.Aggregate = 1 - sum

	fraction := coarseFraction(in.MaxAggregateMM, wc)
	coarse := fraction * vol.Aggregate * in.CoarseSG * 1000
	fine := (1 - fraction) * vol.Aggregate * in.FineSG * 1000

	prop := Proportion{Cement: 1, Fine: fine / cement, Coarse: coarse / cement, Water: water / cement}

	return Result{
		TargetMeanMPa:  target,
		WCRatio:        wc,
		EffectiveWC:    water / cement,
		WaterKgM3:      water,
		CementKgM3:     cement,
		AdmixtureKgM3:  admixture,
		FineKgM3:       fine,
		CoarseKgM3:     coarse,
		CoarseFraction: fraction,
		Volumes:        vol,
		Proportion:     prop,
		RatioText:      fmt.Sprintf("1 : %.2f : %.2f (w/c %.2f)", prop.Fine, prop.Coarse, prop.Water),
		Strength:       strengthCurve(target, in.Admixture),
		Batch: Batch{
			VolumeM3: in.VolumeM3,
			Materials: quantity.Materials{
				Cement:    cement * in.VolumeM3,
				Sand:      fine * in.VolumeM3,
				Aggregate: coarse * in.VolumeM3,
				Water:     water * in.VolumeM3,
			},
			AdmixtureKg: admixture * in.VolumeM3,
			CementBags:  cement * in.VolumeM3 / BagKg,
		},
		Notes: "Absolute volume method; trial mixes should confirm the proportions.",
	}, nil
}

func withDefaults(in Input) Input {
	in.FckMPa = math.Max(quantity.Clean(in.FckMPa), 0)
	in.StdDevMPa = quantity.Clean(in.StdDevMPa)
	if in.StdDevMPa <= 0 {
		switch {
		case in.FckMPa <= 15:
			in.StdDevMPa = 3.5
		case in.FckMPa <= 25:
			in.StdDevMPa = 4.0
		default:
			in.StdDevMPa = 5.0
		}
	}
	in.Exposure = Exposure(strings.ToLower(strings.TrimSpace(string(in.Exposure))))
	in.Admixture = Admixture(strings.ToLower(strings.TrimSpace(string(in.Admixture))))
	in.MaxAggregateMM = nearestSize(quantity.Clean(in.MaxAggregateMM))
	in.SlumpMM = quantity.Clean(in.SlumpMM)
	if in.SlumpMM <= 0 {
		in.SlumpMM = defaultSlumpMM
	}
	in.PlasticizerPercent = math.Max(quantity.Clean(in.PlasticizerPercent), 0)
	in.AdmixturePercent = math.Max(quantity.Clean(in.AdmixturePercent), 0)
	if in.Admixture != AdmixtureRetarder && in.Admixture != AdmixtureAccelerator {
		in.Admixture = AdmixtureNone
		in.AdmixturePercent = 0
	}
	in.AirPercent = quantity.Clean(in.AirPercent)
	if in.AirPercent <= 0 {
		in.AirPercent = entrappedAir(in.MaxAggregateMM)
	}
	in.CementSG = positiveOr(in.CementSG, defaultCementSG)
	in.FineSG = positiveOr(in.FineSG, defaultFineSG)
	in.CoarseSG = positiveOr(in.CoarseSG, defaultCoarseSG)
	in.AdmixtureSG = positiveOr(in.AdmixtureSG, defaultAdmixtureSG)
	in.VolumeM3 = positiveOr(in.VolumeM3, 1)
	return in
}

func positiveOr(v, def float64) float64 {
	v = quantity.Clean(v)
	if v <= 0 {
		return def
	}
	return v
}

func nearestSize(mm float64) float64 {
	switch {
	case mm <= 0:
		return defaultMaxAggMM
	case mm < 15:
		return 10
	case mm < 30:
		return 20
	default:
		return 40
	}
}

func waterCementRatio(target float64, exp Exposure) float64 {
	wc := maxWC(exp)
	if target > 0 {
		wc = math.Min(InverseStrengthK/target, wc)
	}
	return math.Max(wc, MinWCRatio)
}

func maxWC(exp Exposure) float64 {
	switch exp {
	case ExposureSevere, ExposureVerySevere, ExposureMarine:
		return 0.45
	case ExposureModerate:
		return 0.55
	default:
		return 0.60
	}
}

func minCement(exp Exposure) float64 {
	switch exp {
	case ExposureSevere, ExposureVerySevere, ExposureMarine:
		return 340
	case ExposureModerate:
		return 300
	default:
		return MinCementContent
	}
}

// baseWater is kg/m3 for angular aggregate at 25-50 mm slump.
func baseWater(size float64) float64 {
	switch size {
	case 10:
		return 208
	case 40:
		return 165
	default:
		return 186
	}
}

func shapeAdjustment(shape string) float64 {
	switch strings.ToLower(strings.TrimSpace(shape)) {
	case "subangular", "sub-angular":
		return -10
	case "gravel":
		return -20
	case "rounded":
		return -25
	default:
		return 0
	}
}

func entrappedAir(size float64) float64 {
	switch size {
	case 10:
		return 1.5
	case 40:
		return 0.8
	default:
		return 1.0
	}
}

func coarseFraction(size, wc float64) float64 {
	base := 0.60
	switch size {
	case 10:
		base = 0.52
	case 40:
		base = 0.66
	}
	f := base - (wc-0.5)*0.05
	return math.Min(math.Max(f, 0.45), 0.70)
}

var strengthDays = []struct {
	day      int
	fraction float64
}{
	{3, 0.45},
	{7, 0.65},
	{28, 1.0},
	{90, 1.15},
}

func strengthCurve(target float64, adm Admixture) []StrengthPoint {
	out := make([]StrengthPoint, 0, len(strengthDays))
	for _, d := range strengthDays {
		f := d.fraction
		switch {
		case adm == AdmixtureRetarder && d.day == 3:
			f *= 0.8
		case adm == AdmixtureRetarder && d.day == 7:
			f *= 0.9
		case adm == AdmixtureAccelerator && d.day == 3:
			f *= 1.2
		}
		out = append(out, StrengthPoint{Day: d.day, MPa: target * f, Percent: f * 100})
	}
	return out
}

// Lines flattens the per-m3 quantities.
func Lines(res Result) []quantity.Line {
	return []quantity.Line{
		{Label: "Cement", Quantity: res.CementKgM3, Unit: "kg/m³"},
		{Label: "Water", Quantity: res.WaterKgM3, Unit: "kg/m³"},
		{Label: "Fine aggregate", Quantity: res.FineKgM3, Unit: "kg/m³"},
		{Label: "Coarse aggregate", Quantity: res.CoarseKgM3, Unit: "kg/m³"},
		{Label: "Admixture", Quantity: res.AdmixtureKgM3, Unit: "kg/m³"},
		{Label: "W/C ratio", Quantity: res.WCRatio, Unit: ""},
		{Label: "Target mean strength", Quantity: res.TargetMeanMPa, Unit: "MPa"},
	}
}

// Points is the strength development chart.
func Points(res Result) []quantity.Point {
	out := make([]quantity.Point, 0, len(res.Strength))
	for _, s := range res.Strength {
		out = append(out, quantity.Point{Label: fmt.Sprintf("%d days", s.Day), Value: s.MPa})
	}
	return out
}
