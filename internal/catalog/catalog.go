// Package catalog lists the calculators the server exposes and searches them
// by title, id, category or keyword.
package catalog

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"Buildcalc/internal/units"
)

type Category string

const (
	Construction Category = "construction"
	Finance      Category = "finance"
	Conversion   Category = "conversion"
)

type Calculator struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Path     string   `json:"path"`
	Keywords []string `json:"keywords,omitempty"`
}

var tools = []Calculator{
	{ID: "concrete", Title: "Concrete Calculator", Category: Construction, Path: "/api/tools/concrete/calc",
		Keywords: []string{"slab", "cement", "sand", "aggregate", "volume", "bags"}},
	{ID: "mix-design", Title: "Concrete Mix Design", Category: Construction, Path: "/api/tools/mix-design/calc",
		Keywords: []string{"grade", "water cement ratio", "slump", "strength"}},
	{ID: "bar-bending", Title: "Bar Bending Schedule", Category: Construction, Path: "/api/tools/bar-bending/calc",
		Keywords: []string{"bbs", "rebar", "steel", "cutting length"}},
	{ID: "rate-analysis", Title: "Rate Analysis", Category: Construction, Path: "/api/tools/rate-analysis/calc",
		Keywords: []string{"boq", "labor", "material", "machinery", "overhead"}},
	{ID: "emi", Title: "EMI Calculator", Category: Finance, Path: "/api/tools/emi/calc",
		Keywords: []string{"loan", "mortgage", "interest", "installment"}},
	{ID: "discount", Title: "Discount Calculator", Category: Finance, Path: "/api/tools/discount/calc",
		Keywords: []string{"sale", "offer", "percent", "price"}},
}

// All returns the tool calculators followed by one converter per unit domain.
func All(reg *units.Registry) []Calculator {
	out := make([]Calculator, 0, len(tools)+16)
	out = append(out, tools...)
	for _, id := range reg.Domains() {
		d, _ := reg.Domain(id)
		kw := make([]string, 0, len(d.Units))
		for _, u := range d.Units {
			kw = append(kw, u.Name)
		}
		out = append(out, Calculator{
			ID:       string(id) + "-converter",
			Title:    d.Name + " Converter",
			Category: Conversion,
			Path:     "/api/units/" + string(id),
			Keywords: kw,
		})
	}
	return out
}

// Lookup finds a calculator by id.
func Lookup(reg *units.Registry, id string) (Calculator, bool) {
	for _, c := range All(reg) {
		if c.ID == id {
			return c, true
		}
	}
	return Calculator{}, false
}

// Search ranks matches: exact id first, then title prefix, then any other
// substring hit. An empty query returns everything.
func Search(reg *units.Registry, q string) []Calculator {
	all := All(reg)
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return all
	}
	type hit struct {
		c    Calculator
		rank int
		pos  int
	}
	var hits []hit
	for i, c := range all {
		if r := rank(c, q); r > 0 {
			hits = append(hits, hit{c, r, i})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].rank != hits[j].rank {
			return hits[i].rank > hits[j].rank
		}
		return hits[i].pos < hits[j].pos
	})
	out := make([]Calculator, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.c)
	}
	return out
}

func rank(c Calculator, q string) int {
	title := strings.ToLower(c.Title)
	switch {
	case c.ID == q:
		return 4
	case strings.HasPrefix(title, q):
		return 3
	case strings.Contains(title, q) || strings.Contains(c.ID, q):
		return 2
	case string(c.Category) == q:
		return 1
	}
	for _, k := range c.Keywords {
		if strings.Contains(strings.ToLower(k), q) {
			return 1
		}
	}
	return 0
}

type Handler struct {
	Registry *units.Registry
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reg := h.Registry
	if reg == nil {
		reg = units.Default()
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Search(reg, r.URL.Query().Get("q")))
}
