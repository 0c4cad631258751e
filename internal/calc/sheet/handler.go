package sheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Buildcalc/internal/calc/barbending"
	"Buildcalc/internal/calc/quantity"
)

const MaxUploadSize = 10 << 20 // 10MB

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct{}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := Import(file)
	if err != nil {
		if errors.Is(err, ErrEmptySheet) {
			http.Error(w, "Empty sheet", http.StatusBadRequest)
			return
		}
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input barbending.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := barbending.Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := ExportSchedule(&buf, res); err != nil {
		log.Printf("bbs export: %v", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", xlsxType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"bbs.xlsx\"")
	w.Write(buf.Bytes())
}

type sectionsRequest struct {
	Sections []quantity.Section `json:"sections"`
}

// Sections exports arbitrary result tables, one sheet per section.
func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	var input sectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || len(input.Sections) == 0 {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := ExportSections(&buf, input.Sections); err != nil {
		log.Printf("sections export: %v", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", xlsxType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"results.xlsx\"")
	w.Write(buf.Bytes())
}
