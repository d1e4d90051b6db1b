package metrics

import (
	"time"

	"github.com/macrofit/nutriplan/internal/storage"
)

// BodyMetricDTO is the wire representation of a body measurement record.
type BodyMetricDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Date       string    `json:"date"` // YYYY-MM-DD
	WeightKg   float64   `json:"weight_kg"`
	BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
	WaistCm    *float64  `json:"waist_cm,omitempty"`
	ChestCm    *float64  `json:"chest_cm,omitempty"`
	ArmsCm     *float64  `json:"arms_cm,omitempty"`
	ThighsCm   *float64  `json:"thighs_cm,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateBodyMetricRequest is the body of POST /v1/metrics.
// Date defaults to today when omitted.
type CreateBodyMetricRequest struct {
	Date       string   `json:"date"`
	WeightKg   *float64 `json:"weight_kg"`
	BodyFatPct *float64 `json:"body_fat_pct"`
	WaistCm    *float64 `json:"waist_cm"`
	ChestCm    *float64 `json:"chest_cm"`
	ArmsCm     *float64 `json:"arms_cm"`
	ThighsCm   *float64 `json:"thighs_cm"`
	Notes      string   `json:"notes"`
}

func toDTO(m *storage.BodyMetric) BodyMetricDTO {
	return BodyMetricDTO{
		ID:         m.ID,
		UserID:     m.UserID,
		Date:       m.Date.Format("2006-01-02"),
		WeightKg:   m.WeightKg,
		BodyFatPct: m.BodyFatPct,
		WaistCm:    m.WaistCm,
		ChestCm:    m.ChestCm,
		ArmsCm:     m.ArmsCm,
		ThighsCm:   m.ThighsCm,
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}
