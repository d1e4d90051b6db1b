package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/macrofit/nutriplan/internal/storage"
)

type bodyMetricsStorage struct {
	mu      sync.RWMutex
	metrics map[string]*storage.BodyMetric // key: metric id
	byUser  map[string][]string            // key: user_id -> []metric id
}

func newBodyMetricsStorage() *bodyMetricsStorage {
	return &bodyMetricsStorage{
		metrics: make(map[string]*storage.BodyMetric),
		byUser:  make(map[string][]string),
	}
}

func (s *bodyMetricsStorage) CreateBodyMetric(ctx context.Context, metric *storage.BodyMetric) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if metric.ID == "" {
		metric.ID = uuid.New().String()
	}

	now := time.Now().UTC()
	metric.CreatedAt = now
	if metric.Date.IsZero() {
		metric.Date = now
	}

	stored := *metric
	s.metrics[metric.ID] = &stored
	s.byUser[metric.UserID] = append(s.byUser[metric.UserID], metric.ID)

	return nil
}

func (s *bodyMetricsStorage) ListBodyMetricsForUser(ctx context.Context, userID string) ([]storage.BodyMetric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	results := make([]storage.BodyMetric, 0, len(ids))
	for _, id := range ids {
		if m, ok := s.metrics[id]; ok {
			results = append(results, *m)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Date.Before(results[j].Date)
	})
	return results, nil
}
