package discount

import "Buildcalc/internal/calc/quantity"

type Input struct {
	Price   float64 `json:"price"`
	Percent float64 `json:"percent"`
	// Extra is a second discount applied to the already discounted price.
	Extra float64 `json:"extra_percent"`
}

type Result struct {
	Savings       float64 `json:"savings"`
	FinalPrice    float64 `json:"final_price"`
	EffectiveRate float64 `json:"effective_percent"`
	ExtraSavings  float64 `json:"extra_savings"`
}

// Calculate applies savings = price×percent/100 and finalPrice = price − savings.
// No bounds are enforced on percent.
func Calculate(in Input) (Result, error) {
	price := quantity.Clean(in.Price)
	savings := price * quantity.Clean(in.Percent) / 100
	final := price - savings

	extra := final * quantity.Clean(in.Extra) / 100
	final -= extra

	res := Result{Savings: savings + extra, FinalPrice: final, ExtraSavings: extra}
	if price != 0 {
		res.EffectiveRate = res.Savings / price * 100
	}
	return res, nil
}

func Lines(res Result) []quantity.Line {
	return []quantity.Line{
		{Label: "You save", Quantity: res.Savings},
		{Label: "Final price", Quantity: res.FinalPrice},
		{Label: "Effective discount", Quantity: res.EffectiveRate, Unit: "%"},
	}
}

func Points(res Result) []quantity.Point {
	return []quantity.Point{
		{Label: "Savings", Value: res.Savings},
		{Label: "Final price", Value: res.FinalPrice},
	}
}
