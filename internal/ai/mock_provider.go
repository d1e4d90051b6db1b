package ai

import (
	"context"
	"fmt"

	"github.com/macrofit/nutriplan/internal/storage"
)

// MockProvider returns a deterministic draft so the staff flow can be
// exercised without an API key.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) DraftPlan(ctx context.Context, q storage.Questionnaire) (string, error) {
	_ = ctx

	return fmt.Sprintf(
		"Mock nutrition plan draft.\n\n"+
			"Goals: %s\n"+
			"Restrictions: %s\n"+
			"Timeframe: %s\n\n"+
			"Week 1-2: balanced meals, three main meals and one snack per day, "+
			"protein with every meal, at least 2 liters of water daily.\n"+
			"Week 3+: adjust portions based on weekly weigh-ins.\n\n"+
			"This is a demo draft and not a substitute for professional advice.",
		orNoneJoined(q.Goals),
		orNoneJoined(q.DietaryRestrictions),
		orNone(q.Timeframe),
	), nil
}
