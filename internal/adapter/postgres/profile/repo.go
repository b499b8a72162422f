// Package profile reads user profile snapshots from PostgreSQL.
package profile

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/aip-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// Repo provides read access to profiles.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns the profile of a user.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := postgres.Builder().
		Select("id", "full_name", "email", "role::text").
		From("profiles").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build profile query: %w", err)
	}

	var (
		p    domain.Profile
		role string
	)
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&p.ID, &p.FullName, &p.Email, &role); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	p.Role = domain.UserRole(role)

	return &p, nil
}
