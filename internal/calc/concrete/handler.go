package concrete

import (
	"encoding/json"
	"net/http"

	"Buildcalc/internal/calc/quantity"
)

type Handler struct{}

// response adds the table and chart rows to the result.
type response struct {
	Result
	quantity.Table
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
	json.NewEncoder(w).Encode(response{Result: res, Table: table(res)})
}
