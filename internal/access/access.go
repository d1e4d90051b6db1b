package access

// Role is the authorization role carried by an authenticated actor.
type Role string

const (
	RoleGuest        Role = "guest"
	RoleUser         Role = "user"
	RoleNutritionist Role = "nutritionist"
	RoleAdmin        Role = "admin"
)

// ParseRole normalizes a role claim; unknown values degrade to guest.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleUser, RoleNutritionist, RoleAdmin:
		return Role(s)
	default:
		return RoleGuest
	}
}

// Actor is the identity+role pair resolved by the auth layer.
// It is passed explicitly into every operation that needs an access decision.
type Actor struct {
	ID   string
	Role Role
}

// IsStaff reports whether the actor may fulfil plan requests.
func (a Actor) IsStaff() bool {
	return a.Role == RoleNutritionist || a.Role == RoleAdmin
}

// CanReadPlan reports whether the actor may read a plan owned by ownerUserID.
func CanReadPlan(a Actor, ownerUserID string) bool {
	if a.IsStaff() {
		return true
	}
	return a.Role == RoleUser && a.ID != "" && a.ID == ownerUserID
}

// CanListAllPlans reports whether the actor may list every plan request.
func CanListAllPlans(a Actor) bool {
	return a.IsStaff()
}

// CanWriteStatus reports whether the actor may transition a plan request.
// Owning users may never transition their own plan.
func CanWriteStatus(a Actor) bool {
	return a.IsStaff()
}

// CanRequestGeneration reports whether the actor may invoke AI draft generation.
func CanRequestGeneration(a Actor) bool {
	return a.IsStaff()
}

// CanManageSubscriptions reports whether the actor may upsert subscriptions.
func CanManageSubscriptions(a Actor) bool {
	return a.Role == RoleAdmin
}
