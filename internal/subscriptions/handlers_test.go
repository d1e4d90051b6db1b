package subscriptions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/storage/memory"
)

func newTestMux() (*http.ServeMux, *Service) {
	service := NewService(memory.New())
	handler := NewHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/subscriptions/{userId}", handler.HandleGet)
	mux.HandleFunc("PUT /v1/subscriptions/{userId}", handler.HandleUpsert)
	return mux, service
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

func TestUpsert_AdminOnly(t *testing.T) {
	mux, _ := newTestMux()

	for _, actor := range []access.Actor{
		{ID: "user-1", Role: access.RoleUser},
		{ID: "nutri-1", Role: access.RoleNutritionist},
	} {
		rec := doRequest(t, mux, &actor, http.MethodPut, "/v1/subscriptions/user-1", `{"status":"active"}`)
		if rec.Code != http.StatusForbidden {
			t.Errorf("role %s should get 403, got %d", actor.Role, rec.Code)
		}
	}

	admin := access.Actor{ID: "admin-1", Role: access.RoleAdmin}
	rec := doRequest(t, mux, &admin, http.MethodPut, "/v1/subscriptions/user-1", `{"status":"active"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin should upsert, got %d: %s", rec.Code, rec.Body.String())
	}

	var dto SubscriptionDTO
	if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if dto.UserID != "user-1" || dto.Status != "active" {
		t.Errorf("unexpected subscription: %+v", dto)
	}
}

func TestUpsert_UnknownStatusIs400(t *testing.T) {
	mux, _ := newTestMux()
	admin := access.Actor{ID: "admin-1", Role: access.RoleAdmin}

	rec := doRequest(t, mux, &admin, http.MethodPut, "/v1/subscriptions/user-1", `{"status":"paused"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestUpsert_ReplacesStatus(t *testing.T) {
	mux, service := newTestMux()
	admin := access.Actor{ID: "admin-1", Role: access.RoleAdmin}

	rec := doRequest(t, mux, &admin, http.MethodPut, "/v1/subscriptions/user-1", `{"status":"active"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	active, err := service.ActiveFor(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !active {
		t.Error("user should be active after upsert")
	}

	rec = doRequest(t, mux, &admin, http.MethodPut, "/v1/subscriptions/user-1", `{"status":"canceled"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	active, err = service.ActiveFor(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if active {
		t.Error("canceled user should not be active")
	}
}

func TestActiveFor_MissingRowIsInactive(t *testing.T) {
	_, service := newTestMux()

	active, err := service.ActiveFor(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("missing row should not be an error: %v", err)
	}
	if active {
		t.Error("missing row should mean inactive")
	}
}

func TestGet_NotFoundIs404(t *testing.T) {
	mux, _ := newTestMux()
	admin := access.Actor{ID: "admin-1", Role: access.RoleAdmin}

	rec := doRequest(t, mux, &admin, http.MethodGet, "/v1/subscriptions/nobody", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
