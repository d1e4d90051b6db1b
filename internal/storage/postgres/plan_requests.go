package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/macrofit/nutriplan/internal/storage"
)

type planRequestsStorage struct {
	pool *pgxpool.Pool
}

func newPlanRequestsStorage(pool *pgxpool.Pool) *planRequestsStorage {
	return &planRequestsStorage{pool: pool}
}

func (s *planRequestsStorage) CreatePlanRequest(ctx context.Context, req *storage.PlanRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.Status == "" {
		req.Status = storage.PlanStatusPending
	}

	questionnaire, err := json.Marshal(req.Questionnaire)
	if err != nil {
		return fmt.Errorf("marshal questionnaire: %w", err)
	}

	query := `
		INSERT INTO plan_requests (id, user_id, questionnaire, status, plan_details, nutritionist_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err = s.pool.QueryRow(ctx, query,
		req.ID,
		req.UserID,
		questionnaire,
		req.Status,
		req.PlanDetails,
		req.NutritionistID,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create plan request: %w", err)
	}

	return nil
}

func (s *planRequestsStorage) GetPlanRequest(ctx context.Context, id string) (*storage.PlanRequest, error) {
	query := `
		SELECT id, user_id, questionnaire, status, plan_details, nutritionist_id, created_at, updated_at
		FROM plan_requests
		WHERE id = $1
	`

	req, err := scanPlanRequest(s.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrPlanRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan request: %w", err)
	}

	return req, nil
}

func (s *planRequestsStorage) ListPlanRequestsForUser(ctx context.Context, userID string) ([]storage.PlanRequest, error) {
	query := `
		SELECT id, user_id, questionnaire, status, plan_details, nutritionist_id, created_at, updated_at
		FROM plan_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan requests: %w", err)
	}
	defer rows.Close()

	return collectPlanRequests(rows)
}

func (s *planRequestsStorage) ListPlanRequests(ctx context.Context) ([]storage.PlanRequest, error) {
	query := `
		SELECT id, user_id, questionnaire, status, plan_details, nutritionist_id, created_at, updated_at
		FROM plan_requests
		ORDER BY created_at DESC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan requests: %w", err)
	}
	defer rows.Close()

	return collectPlanRequests(rows)
}

// UpdatePlanRequest applies a partial merge as a single conditional UPDATE
// keyed by id. Concurrent staff transitions are last-write-wins.
func (s *planRequestsStorage) UpdatePlanRequest(ctx context.Context, id string, upd storage.PlanRequestUpdate) (*storage.PlanRequest, error) {
	query := `
		UPDATE plan_requests
		SET status = COALESCE($2, status),
		    plan_details = COALESCE($3, plan_details),
		    nutritionist_id = COALESCE($4, nutritionist_id),
		    updated_at = $5
		WHERE id = $1
		RETURNING id, user_id, questionnaire, status, plan_details, nutritionist_id, created_at, updated_at
	`

	var status *string
	if upd.Status != nil {
		v := string(*upd.Status)
		status = &v
	}

	req, err := scanPlanRequest(s.pool.QueryRow(ctx, query,
		id,
		status,
		upd.PlanDetails,
		upd.NutritionistID,
		time.Now().UTC(),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrPlanRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update plan request: %w", err)
	}

	return req, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlanRequest(row rowScanner) (*storage.PlanRequest, error) {
	var req storage.PlanRequest
	var questionnaire []byte

	err := row.Scan(
		&req.ID,
		&req.UserID,
		&questionnaire,
		&req.Status,
		&req.PlanDetails,
		&req.NutritionistID,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(questionnaire) > 0 {
		if err := json.Unmarshal(questionnaire, &req.Questionnaire); err != nil {
			return nil, fmt.Errorf("unmarshal questionnaire: %w", err)
		}
	}

	return &req, nil
}

func collectPlanRequests(rows pgx.Rows) ([]storage.PlanRequest, error) {
	requests := []storage.PlanRequest{}
	for rows.Next() {
		req, err := scanPlanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan request: %w", err)
		}
		requests = append(requests, *req)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating plan requests: %w", rows.Err())
	}

	return requests, nil
}
