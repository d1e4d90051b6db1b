package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/storage"
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
)

// Service records and lists per-user body measurements. Records are
// append-only; progress is the ordered history, not a mutable row.
type Service struct {
	storage storage.BodyMetricsStorage
}

func NewService(st storage.BodyMetricsStorage) *Service {
	return &Service{storage: st}
}

// Record stores a measurement for the acting user. Weight is the only
// required field; the date defaults to today (UTC).
func (s *Service) Record(ctx context.Context, actor access.Actor, req CreateBodyMetricRequest) (BodyMetricDTO, error) {
	if actor.ID == "" || actor.Role == access.RoleGuest {
		return BodyMetricDTO{}, ErrForbidden
	}

	if req.WeightKg == nil {
		return BodyMetricDTO{}, fmt.Errorf("%w: weight_kg is required", ErrValidation)
	}
	if *req.WeightKg <= 0 || *req.WeightKg > 500 {
		return BodyMetricDTO{}, fmt.Errorf("%w: weight_kg out of range", ErrValidation)
	}
	for name, v := range map[string]*float64{
		"body_fat_pct": req.BodyFatPct,
		"waist_cm":     req.WaistCm,
		"chest_cm":     req.ChestCm,
		"arms_cm":      req.ArmsCm,
		"thighs_cm":    req.ThighsCm,
	} {
		if v != nil && *v < 0 {
			return BodyMetricDTO{}, fmt.Errorf("%w: %s must not be negative", ErrValidation, name)
		}
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return BodyMetricDTO{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
		}
		date = parsed
	}

	metric := &storage.BodyMetric{
		UserID:     actor.ID,
		Date:       date,
		WeightKg:   *req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		WaistCm:    req.WaistCm,
		ChestCm:    req.ChestCm,
		ArmsCm:     req.ArmsCm,
		ThighsCm:   req.ThighsCm,
		Notes:      req.Notes,
	}
	if err := s.storage.CreateBodyMetric(ctx, metric); err != nil {
		return BodyMetricDTO{}, err
	}

	return toDTO(metric), nil
}

// History returns the actor's own measurements, date ascending.
func (s *Service) History(ctx context.Context, actor access.Actor) ([]BodyMetricDTO, error) {
	if actor.ID == "" || actor.Role == access.RoleGuest {
		return nil, ErrForbidden
	}

	records, err := s.storage.ListBodyMetricsForUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	dtos := make([]BodyMetricDTO, len(records))
	for i := range records {
		dtos[i] = toDTO(&records[i])
	}
	return dtos, nil
}
