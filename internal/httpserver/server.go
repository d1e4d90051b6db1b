package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/macrofit/nutriplan/internal/ai"
	"github.com/macrofit/nutriplan/internal/auth"
	"github.com/macrofit/nutriplan/internal/blob"
	"github.com/macrofit/nutriplan/internal/config"
	"github.com/macrofit/nutriplan/internal/macro"
	"github.com/macrofit/nutriplan/internal/metrics"
	"github.com/macrofit/nutriplan/internal/plans"
	"github.com/macrofit/nutriplan/internal/reports"
	"github.com/macrofit/nutriplan/internal/storage"
	"github.com/macrofit/nutriplan/internal/storage/memory"
	"github.com/macrofit/nutriplan/internal/storage/postgres"
	"github.com/macrofit/nutriplan/internal/subscriptions"
)

// Server wires storage, services and handlers behind a single mux.
type Server struct {
	config         *config.Config
	mux            *http.ServeMux
	storage        storage.Storage
	authMiddleware *auth.Middleware
}

// New creates the HTTP server and registers all routes.
func New(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	s.initStorage()
	s.routes()
	return s
}

// initStorage picks Postgres when DATABASE_URL is set, in-memory otherwise.
// A failed Postgres connection falls back to memory so local development
// keeps working without a database.
func (s *Server) initStorage() {
	if s.config.DatabaseURL == "" {
		log.Println("INFO storage: using in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("INFO storage: connecting to PostgreSQL...")
	pgStorage, err := postgres.New(context.Background(), s.config.DatabaseURL)
	if err != nil {
		log.Printf("WARN storage: PostgreSQL connection failed: %v", err)
		log.Println("WARN storage: falling back to in-memory storage")
		s.storage = memory.New()
		return
	}

	log.Println("INFO storage: PostgreSQL connected")
	s.storage = pgStorage
}

// routes registers all HTTP routes.
func (s *Server) routes() {
	// Health check (no auth required)
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	// Auth API (no auth required)
	authService := auth.NewService(s.config)
	authHandler := auth.NewHandlers(authService, s.config.AuthMode == "dev")
	s.authMiddleware = auth.NewMiddleware(s.config, authService)

	// POST /v1/auth/dev - local dev token
	s.mux.HandleFunc("POST /v1/auth/dev", authHandler.HandleDevAuth)

	// Macro calculator API (no auth required, pure computation)
	macroHandler := macro.NewHandler()

	// POST /v1/macro/calculate - compute daily targets
	s.mux.HandleFunc("POST /v1/macro/calculate", macroHandler.HandleCalculate)

	// Subscriptions API
	subscriptionsService := subscriptions.NewService(s.storage)
	subscriptionsHandler := subscriptions.NewHandler(subscriptionsService)

	// GET /v1/subscriptions/{userId} - inspect subscription (admin)
	s.mux.HandleFunc("GET /v1/subscriptions/{userId}", subscriptionsHandler.HandleGet)

	// PUT /v1/subscriptions/{userId} - upsert subscription (admin)
	s.mux.HandleFunc("PUT /v1/subscriptions/{userId}", subscriptionsHandler.HandleUpsert)

	// Nutrition plans API
	aiProvider := ai.NewProvider(s.config)
	plansService := plans.NewService(s.storage, subscriptionsService, aiProvider)
	plansHandler := plans.NewHandler(plansService)

	// POST /v1/nutrition-plans - create plan request
	s.mux.HandleFunc("POST /v1/nutrition-plans", plansHandler.HandleCreate)

	// GET /v1/nutrition-plans - list plan requests
	s.mux.HandleFunc("GET /v1/nutrition-plans", plansHandler.HandleList)

	// GET /v1/nutrition-plans/{id} - fetch a plan request
	s.mux.HandleFunc("GET /v1/nutrition-plans/{id}", plansHandler.HandleGet)

	// PUT /v1/nutrition-plans/{id} - submit plan details (staff)
	s.mux.HandleFunc("PUT /v1/nutrition-plans/{id}", plansHandler.HandleFulfill)

	// PATCH /v1/nutrition-plans/{id} - transition status (staff)
	s.mux.HandleFunc("PATCH /v1/nutrition-plans/{id}", plansHandler.HandleTransition)

	// POST /v1/generate-plan - AI draft for staff review
	s.mux.HandleFunc("POST /v1/generate-plan", plansHandler.HandleGenerate)

	// Plan export API
	blobStore := s.initBlobStore()
	reportsService := reports.NewService(plansService, blobStore)
	reportsHandler := reports.NewHandler(reportsService)

	// GET /v1/nutrition-plans/{id}/export - download completed plan as PDF
	s.mux.HandleFunc("GET /v1/nutrition-plans/{id}/export", reportsHandler.HandleExport)

	// Body metrics API
	metricsService := metrics.NewService(s.storage)
	metricsHandler := metrics.NewHandler(metricsService)

	// POST /v1/metrics - record a measurement
	s.mux.HandleFunc("POST /v1/metrics", metricsHandler.HandleRecord)

	// GET /v1/metrics - own measurement history
	s.mux.HandleFunc("GET /v1/metrics", metricsHandler.HandleHistory)
}

// initBlobStore initializes the archive store for plan exports.
func (s *Server) initBlobStore() blob.Store {
	log.Printf("INFO blob: initializing export archive store (BLOB_MODE=%s)", s.config.BlobMode)
	store, mode, err := blob.NewBlobStore(s.config, log.Default())
	if err != nil {
		log.Fatalf("FATAL blob: failed to initialize store: %v", err)
	}
	log.Printf("INFO blob: export archive mode: %s", mode)
	return store
}

// handleHealthz reports server liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	// Build middleware chain (outermost first): CORS -> Rate Limit -> Auth -> Router
	var handler http.Handler = s.mux
	if s.authMiddleware != nil && s.config.AuthMode != "none" {
		if s.config.AuthRequired {
			handler = s.authMiddleware.RequireAuth(handler)
		} else {
			handler = s.authMiddleware.OptionalAuth(handler)
		}
	}
	handler = RateLimitMiddleware(s.config, handler)
	handler = CORSMiddleware(s.config, handler)

	log.Printf("Server listening on http://localhost%s\n", addr)
	log.Printf("Health check: http://localhost%s/healthz\n", addr)
	log.Printf("Plans API: http://localhost%s/v1/nutrition-plans\n", addr)

	return http.ListenAndServe(addr, handler)
}

// Close releases storage resources.
func (s *Server) Close() error {
	if s.storage != nil {
		return s.storage.Close()
	}
	return nil
}
