package services

import "github.com/creativeimage/wedding-portal/backend/internal/models"

// Actor is the resolved identity performing an operation, as established by
// the auth middleware. Services receive it instead of reading session state.
type Actor struct {
	ID   uint
	Role string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// CanAccess reports whether the actor may view or edit the given project:
// admins may act on all projects, clients only on their own.
func (a Actor) CanAccess(p *models.Project) bool {
	return a.IsAdmin() || p.UserID == a.ID
}
