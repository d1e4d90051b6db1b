package reports

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/macrofit/nutriplan/internal/access"
	"github.com/macrofit/nutriplan/internal/blob"
	"github.com/macrofit/nutriplan/internal/plans"
)

// ErrPlanNotReady is returned when export is requested for a plan that has
// not reached COMPLETED yet.
var ErrPlanNotReady = errors.New("plan is not completed")

// Service exports completed plans as PDFs. When a blob store is configured
// every export is also archived under plans/{id}.pdf; archival failures are
// logged and never block the download.
type Service struct {
	plans     *plans.Service
	generator *Generator
	blobStore blob.Store // nil in local mode
}

func NewService(planService *plans.Service, blobStore blob.Store) *Service {
	return &Service{
		plans:     planService,
		generator: NewGenerator(),
		blobStore: blobStore,
	}
}

// Export renders the plan as PDF. Read access follows the same policy as
// fetching the plan itself.
func (s *Service) Export(ctx context.Context, actor access.Actor, id string) ([]byte, error) {
	plan, err := s.plans.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if plan.Status != "COMPLETED" {
		return nil, fmt.Errorf("%w: status is %s", ErrPlanNotReady, plan.Status)
	}

	data, err := s.generator.BuildPlanPDF(plan)
	if err != nil {
		return nil, err
	}

	if s.blobStore != nil {
		key := fmt.Sprintf("plans/%s.pdf", plan.ID)
		if _, err := s.blobStore.PutObject(ctx, key, data, "application/pdf"); err != nil {
			log.Printf("WARN: failed to archive plan export %s: %v", key, err)
		}
	}

	return data, nil
}
