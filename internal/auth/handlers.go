package auth

import (
	"encoding/json"
	"io"
	"net/http"
)

// Handlers handles HTTP requests for authentication.
type Handlers struct {
	service *Service
	devMode bool
}

func NewHandlers(service *Service, devMode bool) *Handlers {
	return &Handlers{service: service, devMode: devMode}
}

// HandleDevAuth handles POST /v1/auth/dev.
// Only available in dev auth mode; the body is optional.
func (h *Handlers) HandleDevAuth(w http.ResponseWriter, r *http.Request) {
	if !h.devMode {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	var req DevAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.SignInDev(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
