package storage

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPlanRequestNotFound  = errors.New("plan request not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// PlanStatus is the lifecycle state of a plan request.
type PlanStatus string

const (
	PlanStatusPending    PlanStatus = "PENDING"
	PlanStatusInProgress PlanStatus = "IN_PROGRESS"
	PlanStatusCompleted  PlanStatus = "COMPLETED"
	PlanStatusRejected   PlanStatus = "REJECTED"
)

// Questionnaire is the structured intake attached to a plan request.
// Immutable once the request is created.
type Questionnaire struct {
	CurrentDiet           string   `json:"current_diet"`
	DietaryRestrictions   []string `json:"dietary_restrictions"`
	Allergies             string   `json:"allergies"`
	MedicalConditions     string   `json:"medical_conditions"`
	SleepHours            string   `json:"sleep_hours"`
	StressLevel           string   `json:"stress_level"`
	PhysicalActivityLevel string   `json:"physical_activity_level"`
	WorkoutFrequency      string   `json:"workout_frequency"`
	WorkoutType           []string `json:"workout_type"`
	Goals                 []string `json:"goals"`
	Timeframe             string   `json:"timeframe"`
	AdditionalInfo        string   `json:"additional_info"`
}

// PlanRequest is a user-initiated nutrition plan record.
type PlanRequest struct {
	ID             string
	UserID         string
	Questionnaire  Questionnaire
	Status         PlanStatus
	PlanDetails    string
	NutritionistID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PlanRequestUpdate is a partial merge applied by UpdatePlanRequest.
// Nil fields are left untouched; updated_at is always bumped.
type PlanRequestUpdate struct {
	Status         *PlanStatus
	PlanDetails    *string
	NutritionistID *string
}

// PlanRequestsStorage persists plan requests. UpdatePlanRequest is the only
// mutation path after creation and is invoked exclusively by the lifecycle
// service.
type PlanRequestsStorage interface {
	CreatePlanRequest(ctx context.Context, req *PlanRequest) error
	GetPlanRequest(ctx context.Context, id string) (*PlanRequest, error)
	ListPlanRequestsForUser(ctx context.Context, userID string) ([]PlanRequest, error)
	ListPlanRequests(ctx context.Context) ([]PlanRequest, error)
	UpdatePlanRequest(ctx context.Context, id string, upd PlanRequestUpdate) (*PlanRequest, error)
}

// BodyMetric is a timestamped body measurement record. Weight is the only
// required measurement.
type BodyMetric struct {
	ID         string
	UserID     string
	Date       time.Time
	WeightKg   float64
	BodyFatPct *float64
	WaistCm    *float64
	ChestCm    *float64
	ArmsCm     *float64
	ThighsCm   *float64
	Notes      string
	CreatedAt  time.Time
}

type BodyMetricsStorage interface {
	CreateBodyMetric(ctx context.Context, metric *BodyMetric) error
	// ListBodyMetricsForUser returns the user's records ordered by date ascending.
	ListBodyMetricsForUser(ctx context.Context, userID string) ([]BodyMetric, error)
}

// Subscription is the per-user subscription row consulted at plan creation.
type Subscription struct {
	UserID    string
	Status    string // active | canceled | expired
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SubscriptionsStorage interface {
	GetSubscription(ctx context.Context, userID string) (Subscription, bool, error)
	UpsertSubscription(ctx context.Context, userID string, status string) (Subscription, error)
}

// Storage is the combined persistence surface of the service.
type Storage interface {
	PlanRequestsStorage
	BodyMetricsStorage
	SubscriptionsStorage
	Close() error
}
