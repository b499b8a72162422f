// Package scope decides which records an actor may act on: projects inside
// the actor's own barangay or city, and AIPs inside a reviewer's jurisdiction.
package scope

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

type projectRepo interface {
	FindInScope(ctx context.Context, scope domain.Scope, ref string) ([]domain.ScopedProject, error)
}

// Resolver resolves scoped projects and reviewer jurisdiction.
type Resolver struct {
	projects projectRepo
	log      *slog.Logger
}

// NewResolver creates a new scope Resolver.
func NewResolver(log *slog.Logger, projects projectRepo) *Resolver {
	return &Resolver{
		projects: projects,
		log:      log.With("service", "scope"),
	}
}

var errUnauthorized = domain.Reason(domain.ErrUnauthorized, "Unauthorized.")
