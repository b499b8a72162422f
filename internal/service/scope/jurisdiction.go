package scope

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// AuthorizeReviewer checks that actor may review aip. Admins review anything;
// city officials review barangay AIPs of their own city.
func AuthorizeReviewer(actor domain.Actor, aip *domain.AIP) error {
	if !actor.CanReview() {
		return errUnauthorized
	}
	if actor.IsAdmin() {
		return nil
	}
	if aip.ScopeKind() != domain.ScopeKindBarangay {
		return domain.Reason(domain.ErrUnauthorized, "AIP is not a barangay submission.")
	}
	if aip.ParentCityID == nil || *aip.ParentCityID != actor.Scope.ID {
		return domain.Reason(domain.ErrUnauthorized, "AIP is outside jurisdiction.")
	}
	return nil
}

// AuthorizeCityQueue checks that actor may list the submissions of a city.
func AuthorizeCityQueue(actor domain.Actor, cityID uuid.UUID) error {
	if !actor.CanReview() {
		return errUnauthorized
	}
	if actor.IsAdmin() {
		return nil
	}
	if cityID != actor.Scope.ID {
		return errUnauthorized
	}
	return nil
}
