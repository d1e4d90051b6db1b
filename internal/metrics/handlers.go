package metrics

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/macrofit/nutriplan/internal/access"
)

// Handler handles HTTP requests for body measurements.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleRecord handles POST /v1/metrics
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateBodyMetricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dto, err := h.service.Record(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrForbidden):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			log.Printf("WARN: failed to record body metric: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto)
}

// HandleHistory handles GET /v1/metrics
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	dtos, err := h.service.History(r.Context(), actor)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			writeError(w, http.StatusForbidden, err.Error())
			return
		}
		log.Printf("WARN: failed to list body metrics: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dtos)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
