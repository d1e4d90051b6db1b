package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/macrofit/nutriplan/internal/storage"
)

// PostgresStorage is the pgx-backed implementation of storage.Storage.
type PostgresStorage struct {
	pool          *pgxpool.Pool
	planRequests  *planRequestsStorage
	bodyMetrics   *bodyMetricsStorage
	subscriptions *subscriptionsStorage
}

// New connects to Postgres and verifies the connection with a ping.
func New(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &PostgresStorage{
		pool:          pool,
		planRequests:  newPlanRequestsStorage(pool),
		bodyMetrics:   newBodyMetricsStorage(pool),
		subscriptions: newSubscriptionsStorage(pool),
	}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// PlanRequestsStorage methods - delegate to embedded plan requests storage

func (p *PostgresStorage) CreatePlanRequest(ctx context.Context, req *storage.PlanRequest) error {
	return p.planRequests.CreatePlanRequest(ctx, req)
}

func (p *PostgresStorage) GetPlanRequest(ctx context.Context, id string) (*storage.PlanRequest, error) {
	return p.planRequests.GetPlanRequest(ctx, id)
}

func (p *PostgresStorage) ListPlanRequestsForUser(ctx context.Context, userID string) ([]storage.PlanRequest, error) {
	return p.planRequests.ListPlanRequestsForUser(ctx, userID)
}

func (p *PostgresStorage) ListPlanRequests(ctx context.Context) ([]storage.PlanRequest, error) {
	return p.planRequests.ListPlanRequests(ctx)
}

func (p *PostgresStorage) UpdatePlanRequest(ctx context.Context, id string, upd storage.PlanRequestUpdate) (*storage.PlanRequest, error) {
	return p.planRequests.UpdatePlanRequest(ctx, id, upd)
}

// BodyMetricsStorage methods - delegate to embedded body metrics storage

func (p *PostgresStorage) CreateBodyMetric(ctx context.Context, metric *storage.BodyMetric) error {
	return p.bodyMetrics.CreateBodyMetric(ctx, metric)
}

func (p *PostgresStorage) ListBodyMetricsForUser(ctx context.Context, userID string) ([]storage.BodyMetric, error) {
	return p.bodyMetrics.ListBodyMetricsForUser(ctx, userID)
}

// SubscriptionsStorage methods - delegate to embedded subscriptions storage

func (p *PostgresStorage) GetSubscription(ctx context.Context, userID string) (storage.Subscription, bool, error) {
	return p.subscriptions.GetSubscription(ctx, userID)
}

func (p *PostgresStorage) UpsertSubscription(ctx context.Context, userID string, status string) (storage.Subscription, error) {
	return p.subscriptions.UpsertSubscription(ctx, userID, status)
}
