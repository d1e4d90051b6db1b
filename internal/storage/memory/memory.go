package memory

import (
	"context"

	"github.com/macrofit/nutriplan/internal/storage"
)

// MemoryStorage is the in-memory implementation of storage.Storage.
// Used for local development and tests when DATABASE_URL is not set.
type MemoryStorage struct {
	planRequests  *planRequestsStorage
	bodyMetrics   *bodyMetricsStorage
	subscriptions *subscriptionsStorage
}

// New creates an empty in-memory storage.
func New() *MemoryStorage {
	return &MemoryStorage{
		planRequests:  newPlanRequestsStorage(),
		bodyMetrics:   newBodyMetricsStorage(),
		subscriptions: newSubscriptionsStorage(),
	}
}

func (m *MemoryStorage) Close() error {
	return nil
}

// PlanRequestsStorage methods - delegate to embedded plan requests storage

func (m *MemoryStorage) CreatePlanRequest(ctx context.Context, req *storage.PlanRequest) error {
	return m.planRequests.CreatePlanRequest(ctx, req)
}

func (m *MemoryStorage) GetPlanRequest(ctx context.Context, id string) (*storage.PlanRequest, error) {
	return m.planRequests.GetPlanRequest(ctx, id)
}

func (m *MemoryStorage) ListPlanRequestsForUser(ctx context.Context, userID string) ([]storage.PlanRequest, error) {
	return m.planRequests.ListPlanRequestsForUser(ctx, userID)
}

func (m *MemoryStorage) ListPlanRequests(ctx context.Context) ([]storage.PlanRequest, error) {
	return m.planRequests.ListPlanRequests(ctx)
}

func (m *MemoryStorage) UpdatePlanRequest(ctx context.Context, id string, upd storage.PlanRequestUpdate) (*storage.PlanRequest, error) {
	return m.planRequests.UpdatePlanRequest(ctx, id, upd)
}

// BodyMetricsStorage methods - delegate to embedded body metrics storage

func (m *MemoryStorage) CreateBodyMetric(ctx context.Context, metric *storage.BodyMetric) error {
	return m.bodyMetrics.CreateBodyMetric(ctx, metric)
}

func (m *MemoryStorage) ListBodyMetricsForUser(ctx context.Context, userID string) ([]storage.BodyMetric, error) {
	return m.bodyMetrics.ListBodyMetricsForUser(ctx, userID)
}

// SubscriptionsStorage methods - delegate to embedded subscriptions storage

func (m *MemoryStorage) GetSubscription(ctx context.Context, userID string) (storage.Subscription, bool, error) {
	return m.subscriptions.GetSubscription(ctx, userID)
}

func (m *MemoryStorage) UpsertSubscription(ctx context.Context, userID string, status string) (storage.Subscription, error) {
	return m.subscriptions.UpsertSubscription(ctx, userID, status)
}
