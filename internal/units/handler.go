package units

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"Buildcalc/internal/format"

	"github.com/gorilla/mux"
)

type Handler struct {
	Registry *Registry
}

type domainSummary struct {
	ID    DomainID `json:"id"`
	Name  string   `json:"name"`
	Base  string   `json:"base"`
	Units int      `json:"units"`
}

type convertResponse struct {
	Value   float64 `json:"value"`
	Symbol  string  `json:"symbol"`
	Display string  `json:"display"`
}

func (h *Handler) registry() *Registry {
	if h.Registry == nil {
		return Default()
	}
	return h.Registry
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reg := h.registry()
	out := make([]domainSummary, 0, len(reg.order))
	for _, id := range reg.Domains() {
		d := reg.domains[id]
		out = append(out, domainSummary{ID: d.ID, Name: d.Name, Base: d.Base, Units: len(d.Units)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) Domain(w http.ResponseWriter, r *http.Request) {
	d, err := h.registry().Domain(DomainID(mux.Vars(r)["domain"]))
	if err != nil {
		http.Error(w, "Unknown domain", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	reg := h.registry()
	res, err := reg.Do(req)
	if err != nil {
		var unknown *UnknownUnitError
		if errors.As(err, &unknown) {
			http.Error(w, "Invalid units", http.StatusBadRequest)
			return
		}
		http.Error(w, "Conversion error", http.StatusBadRequest)
		return
	}
	locale := r.URL.Query().Get("locale")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(convertResponse{
		Value:   res.Value,
		Symbol:  res.Symbol,
		Display: reg.Display(req.Domain, req.To, res, locale),
	})
}

// Display renders a converted value for people. Currency amounts carry their
// ISO symbol; other domains are grouped to the domain precision.
func (r *Registry) Display(domain DomainID, to string, res Result, locale string) string {
	if d, err := r.domain(domain); err == nil && d.ID == Currency {
		if s, err := format.Money(res.Value, strings.ToUpper(strings.TrimSpace(to)), locale); err == nil {
			return s
		}
	}
	return format.Number(res.Value, r.Precision(domain), locale) + " " + res.Symbol
}
