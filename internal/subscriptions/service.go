package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/storage"
)

const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusExpired  = "expired"
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
)

// Service answers the one question the plan flow cares about (is this
// user active right now) and lets admins flip the answer.
type Service struct {
	storage storage.SubscriptionsStorage
}

func NewService(st storage.SubscriptionsStorage) *Service {
	return &Service{storage: st}
}

// ActiveFor reports whether the user holds an active subscription.
// Missing rows count as inactive, not as an error.
func (s *Service) ActiveFor(ctx context.Context, userID string) (bool, error) {
	sub, found, err := s.storage.GetSubscription(ctx, userID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return sub.Status == StatusActive, nil
}

// Get returns the subscription row for a user. Admin only.
func (s *Service) Get(ctx context.Context, actor access.Actor, userID string) (SubscriptionDTO, error) {
	if !access.CanManageSubscriptions(actor) {
		return SubscriptionDTO{}, ErrForbidden
	}

	sub, found, err := s.storage.GetSubscription(ctx, userID)
	if err != nil {
		return SubscriptionDTO{}, err
	}
	if !found {
		return SubscriptionDTO{}, storage.ErrSubscriptionNotFound
	}
	return toDTO(sub), nil
}

// Upsert creates or replaces the subscription row for a user. Admin only.
func (s *Service) Upsert(ctx context.Context, actor access.Actor, userID, status string) (SubscriptionDTO, error) {
	if !access.CanManageSubscriptions(actor) {
		return SubscriptionDTO{}, ErrForbidden
	}
	if userID == "" {
		return SubscriptionDTO{}, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	switch status {
	case StatusActive, StatusCanceled, StatusExpired:
	default:
		return SubscriptionDTO{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	sub, err := s.storage.UpsertSubscription(ctx, userID, status)
	if err != nil {
		return SubscriptionDTO{}, err
	}
	return toDTO(sub), nil
}
