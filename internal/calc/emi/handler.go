package emi

import (
	"encoding/json"
	"net/http"

	"Buildcalc/internal/calc/quantity"
	"Buildcalc/internal/format"
)

type Handler struct{}

// response adds the table and chart rows to the result.
type response struct {
	Result
	quantity.Table
	YearPoints    []quantity.Point `json:"year_points,omitempty"`
	InterestShare string           `json:"interest_share"`
}

func table(res Result) quantity.Table {
	return quantity.Table{Lines: Lines(res), Points: Points(res)}
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	out := response{Result: res, Table: table(res), YearPoints: YearPoints(res)}
	if res.TotalPayment > 0 {
		out.InterestShare = format.Percent(res.TotalInterest/res.TotalPayment, r.URL.Query().Get("locale"))
	}
	json.NewEncoder(w).Encode(out)
}
