package subscriptions

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/storage"
)

// Handler handles HTTP requests for subscription management.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGet handles GET /v1/subscriptions/{userId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	dto, err := h.service.Get(r.Context(), actor, r.PathValue("userId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// HandleUpsert handles PUT /v1/subscriptions/{userId}
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req UpsertSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dto, err := h.service.Upsert(r.Context(), actor, r.PathValue("userId"), req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrSubscriptionNotFound):
		writeError(w, http.StatusNotFound, "Subscription not found")
	default:
		log.Printf("WARN: subscription error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
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
