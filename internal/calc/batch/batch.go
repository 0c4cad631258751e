package batch

import (
	"errors"
	"fmt"

	"Buildcalc/internal/units"
)

// MaxItems caps a single batch request.
const MaxItems = 500

var ErrNoItems = errors.New("no items")

type Input struct {
	Items []units.Request `json:"items"`
}

// ItemResult carries either a converted value or the error for that row.
type ItemResult struct {
	units.Request
	Value  float64 `json:"result"`
	Symbol string  `json:"symbol,omitempty"`
	Error  string  `json:"error,omitempty"`
}

type Result struct {
	Results []ItemResult `json:"results"`
	Failed  int          `json:"failed"`
}

// Convert runs every request against reg. A bad row does not stop the
// batch; it is reported in place with "Invalid units".
func Convert(reg *units.Registry, in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrNoItems
	}
	if len(in.Items) > MaxItems {
		return Result{}, fmt.Errorf("batch of %d items exceeds %d", len(in.Items), MaxItems)
	}
	out := Result{Results: make([]ItemResult, 0, len(in.Items))}
	for _, item := range in.Items {
		row := ItemResult{Request: item}
		res, err := reg.Do(item)
		if err != nil {
			row.Error = "Invalid units"
			out.Failed++
		} else {
			row.Value, row.Symbol = res.Value, res.Symbol
		}
		out.Results = append(out.Results, row)
	}
	return out, nil
}
