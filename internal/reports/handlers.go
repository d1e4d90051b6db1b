package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/plans"
	"github.com/macrofit/nutriplan/internal/storage"
)

// Handler handles HTTP requests for plan exports.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleExport handles GET /v1/nutrition-plans/{id}/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	actor, ok := access.GetActor(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := r.PathValue("id")
	data, err := h.service.Export(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, plans.ErrForbidden):
			writeError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, storage.ErrPlanRequestNotFound):
			writeError(w, http.StatusNotFound, "Plan request not found")
		case errors.Is(err, ErrPlanNotReady):
			writeError(w, http.StatusConflict, err.Error())
		default:
			log.Printf("WARN: plan export failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to export plan")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "nutrition-plan-"+id+".pdf"))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
