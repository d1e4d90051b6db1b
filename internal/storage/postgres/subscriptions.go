package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/macrofit/nutriplan/internal/storage"
)

type subscriptionsStorage struct {
	pool *pgxpool.Pool
}

func newSubscriptionsStorage(pool *pgxpool.Pool) *subscriptionsStorage {
	return &subscriptionsStorage{pool: pool}
}

func (s *subscriptionsStorage) GetSubscription(ctx context.Context, userID string) (storage.Subscription, bool, error) {
	query := `
		SELECT user_id, status, created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
	`

	var sub storage.Subscription
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&sub.UserID,
		&sub.Status,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return storage.Subscription{}, false, nil
	}
	if err != nil {
		return storage.Subscription{}, false, fmt.Errorf("failed to get subscription: %w", err)
	}

	return sub, true, nil
}

func (s *subscriptionsStorage) UpsertSubscription(ctx context.Context, userID string, status string) (storage.Subscription, error) {
	query := `
		INSERT INTO subscriptions (user_id, status)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET status = EXCLUDED.status, updated_at = now()
		RETURNING user_id, status, created_at, updated_at
	`

	var sub storage.Subscription
	err := s.pool.QueryRow(ctx, query, userID, status).Scan(
		&sub.UserID,
		&sub.Status,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return storage.Subscription{}, fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return sub, nil
}
