package subscriptions

import (
	"time"

	"github.com/macrofit/nutriplan/internal/storage"
)

// SubscriptionDTO is the wire representation of a subscription row.
type SubscriptionDTO struct {
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertSubscriptionRequest is the body of PUT /v1/subscriptions/{userId}.
type UpsertSubscriptionRequest struct {
	Status string `json:"status"`
}

func toDTO(sub storage.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		UserID:    sub.UserID,
		Status:    sub.Status,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}
