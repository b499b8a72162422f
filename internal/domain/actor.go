package domain

import "github.com/google/uuid"

// Scope is the administrative unit an actor or document belongs to.
type Scope struct {
	Kind ScopeKind
	ID   uuid.UUID
}

// IsSet reports whether the scope names a concrete unit.
func (s Scope) IsSet() bool {
	return (s.Kind == ScopeKindBarangay || s.Kind == ScopeKindCity) && s.ID != uuid.Nil
}

// Actor is the authenticated caller of a workflow operation.
type Actor struct {
	UserID uuid.UUID
	Role   UserRole
	Scope  Scope
}

// IsAdmin reports whether the actor has global administrative rights.
func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// CanReview reports whether the actor may claim, revise or publish AIPs.
func (a Actor) CanReview() bool {
	if a.Role.IsAdmin() {
		return true
	}
	return a.Role == UserRoleCityOfficial && a.Scope.Kind == ScopeKindCity && a.Scope.ID != uuid.Nil
}

// CanSubmitFor reports whether the actor may write project details and updates
// through routes of the given scope kind.
func (a Actor) CanSubmitFor(kind ScopeKind) bool {
	switch kind {
	case ScopeKindBarangay:
		return a.Role == UserRoleBarangayOfficial && a.Scope.Kind == ScopeKindBarangay && a.Scope.ID != uuid.Nil
	case ScopeKindCity:
		return a.Role == UserRoleCityOfficial && a.Scope.Kind == ScopeKindCity && a.Scope.ID != uuid.Nil
	}
	return false
}
