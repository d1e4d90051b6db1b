package ai

import (
	"context"
	"errors"

	"github.com/macrofit/nutriplan/internal/storage"
)

// ErrGeneration covers any upstream drafting failure: timeout, quota,
// malformed response. The caller retries manually; no automatic retry here.
var ErrGeneration = errors.New("plan generation failed")

// Provider produces a free-text nutrition plan draft from a questionnaire.
// Implementations never mutate plan state; the draft is staged by the staff
// client and only persisted through an explicit submit.
type Provider interface {
	DraftPlan(ctx context.Context, q storage.Questionnaire) (string, error)
}
