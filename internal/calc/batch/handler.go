package batch

import (
	"encoding/json"
	"net/http"

	"Buildcalc/internal/units"
)

type Handler struct {
	Registry *units.Registry
}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	reg := h.Registry
	if reg == nil {
		reg = units.Default()
	}
	res, err := Convert(reg, input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
