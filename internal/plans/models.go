package plans

import (
	"time"

	"github.com/macrofit/nutriplan/internal/storage"
)

// PlanRequestDTO is the wire representation of a plan request.
type PlanRequestDTO struct {
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	Questionnaire  storage.Questionnaire `json:"questionnaire"`
	Status         string                `json:"status"`
	PlanDetails    string                `json:"plan_details"`
	NutritionistID string                `json:"nutritionist_id,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// CreatePlanRequestRequest is the body of POST /v1/nutrition-plans.
type CreatePlanRequestRequest struct {
	Questionnaire *storage.Questionnaire `json:"questionnaire"`
}

// FulfillPlanRequest is the body of PUT /v1/nutrition-plans/{id}.
// Status defaults to COMPLETED when omitted.
type FulfillPlanRequest struct {
	PlanDetails string `json:"plan_details"`
	Status      string `json:"status,omitempty"`
}

// TransitionPlanRequest is the body of PATCH /v1/nutrition-plans/{id}.
type TransitionPlanRequest struct {
	Status string `json:"status"`
}

// GeneratePlanRequest is the body of POST /v1/generate-plan.
type GeneratePlanRequest struct {
	Questionnaire *storage.Questionnaire `json:"questionnaire"`
}

// GeneratePlanResponse carries the staged draft. It is not persisted:
// the text only reaches storage through an explicit submit.
type GeneratePlanResponse struct {
	Plan string `json:"plan"`
}

func toDTO(req *storage.PlanRequest) PlanRequestDTO {
	return PlanRequestDTO{
		ID:             req.ID,
		UserID:         req.UserID,
		Questionnaire:  req.Questionnaire,
		Status:         string(req.Status),
		PlanDetails:    req.PlanDetails,
		NutritionistID: req.NutritionistID,
		CreatedAt:      req.CreatedAt,
		UpdatedAt:      req.UpdatedAt,
	}
}
