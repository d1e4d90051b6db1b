package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/macrofit/nutriplan/internal/storage"
)

type bodyMetricsStorage struct {
	pool *pgxpool.Pool
}

func newBodyMetricsStorage(pool *pgxpool.Pool) *bodyMetricsStorage {
	return &bodyMetricsStorage{pool: pool}
}

func (s *bodyMetricsStorage) CreateBodyMetric(ctx context.Context, metric *storage.BodyMetric) error {
	if metric.ID == "" {
		metric.ID = uuid.New().String()
	}
	if metric.Date.IsZero() {
		metric.Date = time.Now().UTC()
	}

	query := `
		INSERT INTO body_metrics (id, user_id, date, weight_kg, body_fat_pct, waist_cm, chest_cm, arms_cm, thighs_cm, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := s.pool.QueryRow(ctx, query,
		metric.ID,
		metric.UserID,
		metric.Date,
		metric.WeightKg,
		metric.BodyFatPct,
		metric.WaistCm,
		metric.ChestCm,
		metric.ArmsCm,
		metric.ThighsCm,
		metric.Notes,
	).Scan(&metric.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create body metric: %w", err)
	}

	return nil
}

func (s *bodyMetricsStorage) ListBodyMetricsForUser(ctx context.Context, userID string) ([]storage.BodyMetric, error) {
	query := `
		SELECT id, user_id, date, weight_kg, body_fat_pct, waist_cm, chest_cm, arms_cm, thighs_cm, notes, created_at
		FROM body_metrics
		WHERE user_id = $1
		ORDER BY date ASC
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list body metrics: %w", err)
	}
	defer rows.Close()

	metrics := []storage.BodyMetric{}
	for rows.Next() {
		var m storage.BodyMetric
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Date,
			&m.WeightKg,
			&m.BodyFatPct,
			&m.WaistCm,
			&m.ChestCm,
			&m.ArmsCm,
			&m.ThighsCm,
			&m.Notes,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan body metric: %w", err)
		}
		metrics = append(metrics, m)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating body metrics: %w", rows.Err())
	}

	return metrics, nil
}
