package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/macrofit/nutriplan/internal/storage"
)

type planRequestsStorage struct {
	mu       sync.RWMutex
	requests map[string]*storage.PlanRequest // key: request id
	byUser   map[string][]string             // key: user_id -> []request id
}

func newPlanRequestsStorage() *planRequestsStorage {
	return &planRequestsStorage{
		requests: make(map[string]*storage.PlanRequest),
		byUser:   make(map[string][]string),
	}
}

func (s *planRequestsStorage) CreatePlanRequest(ctx context.Context, req *storage.PlanRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = storage.PlanStatusPending
	}

	stored := *req
	s.requests[req.ID] = &stored
	s.byUser[req.UserID] = append(s.byUser[req.UserID], req.ID)

	return nil
}

func (s *planRequestsStorage) GetPlanRequest(ctx context.Context, id string) (*storage.PlanRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, storage.ErrPlanRequestNotFound
	}

	copied := *req
	return &copied, nil
}

func (s *planRequestsStorage) ListPlanRequestsForUser(ctx context.Context, userID string) ([]storage.PlanRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	results := make([]storage.PlanRequest, 0, len(ids))
	for _, id := range ids {
		if req, ok := s.requests[id]; ok {
			results = append(results, *req)
		}
	}

	sortByCreatedDesc(results)
	return results, nil
}

func (s *planRequestsStorage) ListPlanRequests(ctx context.Context) ([]storage.PlanRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]storage.PlanRequest, 0, len(s.requests))
	for _, req := range s.requests {
		results = append(results, *req)
	}

	sortByCreatedDesc(results)
	return results, nil
}

func (s *planRequestsStorage) UpdatePlanRequest(ctx context.Context, id string, upd storage.PlanRequestUpdate) (*storage.PlanRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, storage.ErrPlanRequestNotFound
	}

	if upd.Status != nil {
		req.Status = *upd.Status
	}
	if upd.PlanDetails != nil {
		req.PlanDetails = *upd.PlanDetails
	}
	if upd.NutritionistID != nil {
		req.NutritionistID = *upd.NutritionistID
	}
	req.UpdatedAt = time.Now().UTC()

	copied := *req
	return &copied, nil
}

func sortByCreatedDesc(requests []storage.PlanRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}
