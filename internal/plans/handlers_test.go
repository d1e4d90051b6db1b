package plans

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/ai"
	"github.com/macrofit/nutriplan/internal/storage/memory"
)

func newTestMux(service *Service) *http.ServeMux {
	handler := NewHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/nutrition-plans", handler.HandleCreate)
	mux.HandleFunc("GET /v1/nutrition-plans", handler.HandleList)
	mux.HandleFunc("GET /v1/nutrition-plans/{id}", handler.HandleGet)
	mux.HandleFunc("PUT /v1/nutrition-plans/{id}", handler.HandleFulfill)
	mux.HandleFunc("PATCH /v1/nutrition-plans/{id}", handler.HandleTransition)
	mux.HandleFunc("POST /v1/generate-plan", handler.HandleGenerate)
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, actor *access.Actor, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if actor != nil {
		req = req.WithContext(access.WithActor(req.Context(), *actor))
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandlers_CreateAndFetch(t *testing.T) {
	service, _ := newTestService("user-1")
	mux := newTestMux(service)

	body := `{"questionnaire":{"goals":["lose weight"],"timeframe":"3 months"}}`
	rec := doRequest(t, mux, &subscriber, http.MethodPost, "/v1/nutrition-plans", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created PlanRequestDTO
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Status != "PENDING" {
		t.Errorf("expected PENDING, got %s", created.Status)
	}

	rec = doRequest(t, mux, &subscriber, http.MethodGet, "/v1/nutrition-plans/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, mux, &otherUser, http.MethodGet, "/v1/nutrition-plans/"+created.ID, "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign user should get 403, got %d", rec.Code)
	}

	rec = doRequest(t, mux, &subscriber, http.MethodGet, "/v1/nutrition-plans/unknown-id", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("absent id should be 404, got %d", rec.Code)
	}
}

func TestHandlers_CreateWithoutSubscriptionIs403(t *testing.T) {
	service, _ := newTestService()
	mux := newTestMux(service)

	body := `{"questionnaire":{"goals":["lose weight"]}}`
	rec := doRequest(t, mux, &subscriber, http.MethodPost, "/v1/nutrition-plans", body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if resp["error"] == "" {
		t.Error("error body should carry a message")
	}
}

func TestHandlers_MissingActorIs401(t *testing.T) {
	service, _ := newTestService("user-1")
	mux := newTestMux(service)

	rec := doRequest(t, mux, nil, http.MethodGet, "/v1/nutrition-plans", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandlers_InvalidTransitionIs409(t *testing.T) {
	service, _ := newTestService("user-1")
	mux := newTestMux(service)

	rec := doRequest(t, mux, &subscriber, http.MethodPost, "/v1/nutrition-plans", `{"questionnaire":{"goals":["gain muscle"]}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var created PlanRequestDTO
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// PENDING straight to COMPLETED.
	rec = doRequest(t, mux, &nutritionist, http.MethodPut, "/v1/nutrition-plans/"+created.ID, `{"plan_details":"x"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, mux, &nutritionist, http.MethodPatch, "/v1/nutrition-plans/"+created.ID, `{"status":"IN_PROGRESS"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, mux, &nutritionist, http.MethodPut, "/v1/nutrition-plans/"+created.ID, `{"plan_details":"Final plan"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var done PlanRequestDTO
	if err := json.NewDecoder(rec.Body).Decode(&done); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if done.Status != "COMPLETED" || done.PlanDetails != "Final plan" {
		t.Errorf("unexpected final state: %+v", done)
	}
}

func TestHandlers_PatchByUserIs403(t *testing.T) {
	service, _ := newTestService("user-1")
	mux := newTestMux(service)

	rec := doRequest(t, mux, &subscriber, http.MethodPost, "/v1/nutrition-plans", `{"questionnaire":{"goals":["tone up"]}}`)
	var created PlanRequestDTO
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rec = doRequest(t, mux, &subscriber, http.MethodPatch, "/v1/nutrition-plans/"+created.ID, `{"status":"IN_PROGRESS"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestHandlers_Generate(t *testing.T) {
	subs := &fakeSubscriptions{active: map[string]bool{}}
	service := NewService(memory.New(), subs, ai.NewMockProvider())
	mux := newTestMux(service)

	rec := doRequest(t, mux, &nutritionist, http.MethodPost, "/v1/generate-plan", `{"questionnaire":{"goals":["lose weight"]}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp GeneratePlanResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Plan, "lose weight") {
		t.Errorf("draft should reflect the goals, got %q", resp.Plan)
	}

	rec = doRequest(t, mux, &subscriber, http.MethodPost, "/v1/generate-plan", `{"questionnaire":{"goals":["lose weight"]}}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("regular users must not generate, got %d", rec.Code)
	}
}

func TestHandlers_GenerateFailureIs500(t *testing.T) {
	service := NewService(memory.New(), &fakeSubscriptions{}, failingProvider{})
	mux := newTestMux(service)

	rec := doRequest(t, mux, &nutritionist, http.MethodPost, "/v1/generate-plan", `{"questionnaire":{"goals":["x"]}}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
