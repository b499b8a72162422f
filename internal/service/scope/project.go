package scope

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
	"github.com/heartmarshall/aip-review-backend/pkg/ctxutil"
)

// ActorFor returns the context actor if it may write through routes of the
// given scope kind: barangay officials for barangay routes, city officials
// for city routes.
func (r *Resolver) ActorFor(ctx context.Context, routeScope domain.ScopeKind) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, errUnauthorized
	}
	if !actor.CanSubmitFor(routeScope) {
		return domain.Actor{}, errUnauthorized
	}
	return actor, nil
}

// ResolveProject finds the single project the identifier names inside the
// actor's scope. The identifier is a project id or an AIP reference code.
func (r *Resolver) ResolveProject(ctx context.Context, actor domain.Actor, ref string) (*domain.ScopedProject, error) {
	ref = domain.NormalizeIdentifier(ref)
	if ref == "" {
		return nil, domain.NewValidationError("project", "Project identifier is required.")
	}
	if !actor.Scope.IsSet() {
		return nil, errUnauthorized
	}

	candidates, err := r.projects.FindInScope(ctx, actor.Scope, ref)
	if err != nil {
		return nil, fmt.Errorf("find project in scope: %w", err)
	}

	switch len(candidates) {
	case 0:
		return nil, domain.Reason(domain.ErrNotFound, "Project not found.")
	case 1:
	default:
		r.log.WarnContext(ctx, "ambiguous project reference",
			slog.String("ref", ref),
			slog.String("scope_kind", actor.Scope.Kind.String()),
			slog.String("scope_id", actor.Scope.ID.String()),
		)
		return nil, domain.Reason(domain.ErrConflict, "Project reference is ambiguous within your scope.")
	}

	project := candidates[0]
	if !project.Category.AcceptsSubmissions() {
		return nil, domain.NewValidationError("project", "Only health or infrastructure projects can be updated.")
	}
	return &project, nil
}
