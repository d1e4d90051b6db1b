package macro

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Handler handles HTTP requests for macro calculation.
type Handler struct{}

// NewHandler creates a new macro calculator handler.
func NewHandler() *Handler {
	return &Handler{}
}

// HandleCalculate handles POST /v1/macro/calculate
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	targets, err := Compute(profile)
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to compute targets")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(targets)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
