package plans

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/ai"
	"github.com/macrofit/nutriplan/internal/storage"
)

var (
	ErrForbidden            = errors.New("forbidden")
	ErrSubscriptionRequired = errors.New("active subscription required")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrValidation           = errors.New("validation error")
)

// SubscriptionGate answers whether a user may create plan requests.
type SubscriptionGate interface {
	ActiveFor(ctx context.Context, userID string) (bool, error)
}

// Service owns the plan request lifecycle. All status and plan_details
// writes funnel through its transition methods; nothing else mutates
// stored requests after creation.
type Service struct {
	storage       storage.PlanRequestsStorage
	subscriptions SubscriptionGate
	provider      ai.Provider
}

func NewService(st storage.PlanRequestsStorage, subscriptions SubscriptionGate, provider ai.Provider) *Service {
	return &Service{
		storage:       st,
		subscriptions: subscriptions,
		provider:      provider,
	}
}

// Create registers a new PENDING plan request for the acting user.
// The subscription is checked here and never re-validated on later reads.
func (s *Service) Create(ctx context.Context, actor access.Actor, questionnaire *storage.Questionnaire) (PlanRequestDTO, error) {
	if actor.ID == "" || actor.Role == access.RoleGuest {
		return PlanRequestDTO{}, ErrForbidden
	}
	if questionnaire == nil {
		return PlanRequestDTO{}, fmt.Errorf("%w: questionnaire is required", ErrValidation)
	}
	if len(questionnaire.Goals) == 0 {
		return PlanRequestDTO{}, fmt.Errorf("%w: at least one goal is required", ErrValidation)
	}

	active, err := s.subscriptions.ActiveFor(ctx, actor.ID)
	if err != nil {
		return PlanRequestDTO{}, err
	}
	if !active {
		return PlanRequestDTO{}, ErrSubscriptionRequired
	}

	req := &storage.PlanRequest{
		UserID:        actor.ID,
		Questionnaire: *questionnaire,
		Status:        storage.PlanStatusPending,
	}
	if err := s.storage.CreatePlanRequest(ctx, req); err != nil {
		return PlanRequestDTO{}, err
	}

	return toDTO(req), nil
}

// Get returns a single plan request. Absent ids map to the storage
// not-found error; existing-but-foreign plans yield ErrForbidden. The
// distinction deliberately leaks existence: support flows rely on it.
func (s *Service) Get(ctx context.Context, actor access.Actor, id string) (PlanRequestDTO, error) {
	req, err := s.storage.GetPlanRequest(ctx, id)
	if err != nil {
		return PlanRequestDTO{}, err
	}

	if !access.CanReadPlan(actor, req.UserID) {
		return PlanRequestDTO{}, ErrForbidden
	}

	return toDTO(req), nil
}

// List returns all plan requests for staff, or the actor's own otherwise.
// Both orderings are created_at descending.
func (s *Service) List(ctx context.Context, actor access.Actor) ([]PlanRequestDTO, error) {
	if actor.ID == "" || actor.Role == access.RoleGuest {
		return nil, ErrForbidden
	}

	var (
		requests []storage.PlanRequest
		err      error
	)
	if access.CanListAllPlans(actor) {
		requests, err = s.storage.ListPlanRequests(ctx)
	} else {
		requests, err = s.storage.ListPlanRequestsForUser(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}

	dtos := make([]PlanRequestDTO, len(requests))
	for i := range requests {
		dtos[i] = toDTO(&requests[i])
	}
	return dtos, nil
}

// Fulfill handles PUT: stores plan details and transitions the request,
// defaulting the target status to COMPLETED. An empty plan_details leaves
// previously staged details untouched instead of blanking them.
func (s *Service) Fulfill(ctx context.Context, actor access.Actor, id string, req FulfillPlanRequest) (PlanRequestDTO, error) {
	target := storage.PlanStatusCompleted
	if req.Status != "" {
		parsed, ok := parseStatus(req.Status)
		if !ok {
			return PlanRequestDTO{}, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
		}
		target = parsed
	}

	var details *string
	if req.PlanDetails != "" {
		details = &req.PlanDetails
	}
	return s.transition(ctx, actor, id, target, details)
}

// Transition handles PATCH: a status change without touching plan details.
// Transitioning to COMPLETED reuses the details already on the record, so
// the non-empty-details invariant still applies.
func (s *Service) Transition(ctx context.Context, actor access.Actor, id string, status string) (PlanRequestDTO, error) {
	target, ok := parseStatus(status)
	if !ok {
		return PlanRequestDTO{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	return s.transition(ctx, actor, id, target, nil)
}

// transition is the single mutation path. It validates the state machine,
// records the acting staff id as assigned nutritionist (each transition
// overwrites it; concurrent staff actions are last-write-wins at the
// store) and persists everything in one partial update.
func (s *Service) transition(ctx context.Context, actor access.Actor, id string, target storage.PlanStatus, details *string) (PlanRequestDTO, error) {
	if !access.CanWriteStatus(actor) {
		return PlanRequestDTO{}, ErrForbidden
	}

	current, err := s.storage.GetPlanRequest(ctx, id)
	if err != nil {
		return PlanRequestDTO{}, err
	}

	if !canTransition(current.Status, target) {
		return PlanRequestDTO{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
	}

	if target == storage.PlanStatusCompleted {
		effective := current.PlanDetails
		if details != nil {
			effective = *details
		}
		if strings.TrimSpace(effective) == "" {
			return PlanRequestDTO{}, fmt.Errorf("%w: plan_details must not be empty on completion", ErrValidation)
		}
	}

	upd := storage.PlanRequestUpdate{
		Status:         &target,
		NutritionistID: &actor.ID,
		PlanDetails:    details,
	}

	updated, err := s.storage.UpdatePlanRequest(ctx, id, upd)
	if err != nil {
		return PlanRequestDTO{}, err
	}

	return toDTO(updated), nil
}

// Generate produces a staged plan draft from a questionnaire. Staff only;
// no plan state is touched.
func (s *Service) Generate(ctx context.Context, actor access.Actor, questionnaire *storage.Questionnaire) (string, error) {
	if !access.CanRequestGeneration(actor) {
		return "", ErrForbidden
	}
	if questionnaire == nil {
		return "", fmt.Errorf("%w: questionnaire is required", ErrValidation)
	}

	return s.provider.DraftPlan(ctx, *questionnaire)
}
