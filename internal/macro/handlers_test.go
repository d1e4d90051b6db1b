package macro

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleCalculate_Success(t *testing.T) {
	handler := NewHandler()

	body, _ := json.Marshal(Profile{
		Sex:           "male",
		Age:           30,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "moderate",
		Goal:          "maintain",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/macro/calculate", bytes.NewReader(body))

	w := httptest.NewRecorder()
	handler.HandleCalculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}

	var targets Targets
	if err := json.NewDecoder(w.Body).Decode(&targets); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if targets.Calories != 2759 {
		t.Errorf("expected 2759 calories, got %d", targets.Calories)
	}
	if targets.ProteinG != 176 {
		t.Errorf("expected 176g protein, got %d", targets.ProteinG)
	}
}

func TestHandleCalculate_OutOfRange(t *testing.T) {
	handler := NewHandler()

	body, _ := json.Marshal(Profile{
		Sex:           "male",
		Age:           10,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: "moderate",
		Goal:          "maintain",
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/macro/calculate", bytes.NewReader(body))

	w := httptest.NewRecorder()
	handler.HandleCalculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected error message in response")
	}
}

func TestHandleCalculate_MalformedBody(t *testing.T) {
	handler := NewHandler()

	req := httptest.NewRequest(http.MethodPost, "/v1/macro/calculate", bytes.NewReader([]byte("{not json")))

	w := httptest.NewRecorder()
	handler.HandleCalculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}
