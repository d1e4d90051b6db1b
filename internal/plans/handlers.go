package plans

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/ai"
	"github.com/macrofit/nutriplan/internal/storage"
)

// Handler handles HTTP requests for nutrition plan requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate handles POST /v1/nutrition-plans
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body CreatePlanRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dto, err := h.service.Create(r.Context(), actor, body.Questionnaire)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto)
}

// HandleGet handles GET /v1/nutrition-plans/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	dto, err := h.service.Get(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// HandleList handles GET /v1/nutrition-plans
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	dtos, err := h.service.List(r.Context(), actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos)
}

// HandleFulfill handles PUT /v1/nutrition-plans/{id}
func (h *Handler) HandleFulfill(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body FulfillPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dto, err := h.service.Fulfill(r.Context(), actor, r.PathValue("id"), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// HandleTransition handles PATCH /v1/nutrition-plans/{id}
func (h *Handler) HandleTransition(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body TransitionPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dto, err := h.service.Transition(r.Context(), actor, r.PathValue("id"), body.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto)
}

// HandleGenerate handles POST /v1/generate-plan
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body GeneratePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := h.service.Generate(r.Context(), actor, body.Questionnaire)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GeneratePlanResponse{Plan: draft})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrSubscriptionRequired):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrPlanRequestNotFound):
		writeError(w, http.StatusNotFound, "Plan request not found")
	case errors.Is(err, ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ai.ErrGeneration):
		log.Printf("WARN: plan generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Plan generation failed")
	default:
		log.Printf("WARN: plan request error: %v", err)
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
