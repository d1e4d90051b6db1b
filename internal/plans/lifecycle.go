package plans

import "github.com/macrofit/nutriplan/internal/storage"

// State machine over plan request status:
//
//	PENDING     -> IN_PROGRESS | REJECTED
//	IN_PROGRESS -> COMPLETED   | REJECTED
//
// COMPLETED and REJECTED are terminal.
func canTransition(from, to storage.PlanStatus) bool {
	switch from {
	case storage.PlanStatusPending:
		return to == storage.PlanStatusInProgress || to == storage.PlanStatusRejected
	case storage.PlanStatusInProgress:
		return to == storage.PlanStatusCompleted || to == storage.PlanStatusRejected
	default:
		return false
	}
}

func parseStatus(s string) (storage.PlanStatus, bool) {
	switch storage.PlanStatus(s) {
	case storage.PlanStatusPending, storage.PlanStatusInProgress,
		storage.PlanStatusCompleted, storage.PlanStatusRejected:
		return storage.PlanStatus(s), true
	default:
		return "", false
	}
}
