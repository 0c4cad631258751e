package favorites

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Buildcalc/internal/auth"
)

type Handler struct {
	Service *Service
}

type listRequest struct {
	IDs []string `json:"ids"`
}

type touchRequest struct {
	ID string `json:"id"`
}

type listResponse struct {
	IDs []string `json:"ids"`
}

func writeList(w http.ResponseWriter, ids []string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listResponse{IDs: ids})
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUnknownCalculator) {
		http.Error(w, "Unknown calculator", http.StatusBadRequest)
		return
	}
	log.Printf("favorites: %v", err)
	http.Error(w, "DB error", http.StatusInternalServerError)
}

func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	ids, err := h.Service.Favorites(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeList(w, ids)
}

func (h *Handler) PutFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req listRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	ids, err := h.Service.SetFavorites(r.Context(), userID, req.IDs)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeList(w, ids)
}

func (h *Handler) GetRecents(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	ids, err := h.Service.Recents(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeList(w, ids)
}

func (h *Handler) PostRecent(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req touchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	ids, err := h.Service.Touch(r.Context(), userID, req.ID)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeList(w, ids)
}
