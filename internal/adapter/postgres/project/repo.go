// Package project implements project lookup and detail persistence using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/aip-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Scoped lookup
// ---------------------------------------------------------------------------

// FindInScope returns at most two projects matching ref whose parent AIP
// belongs to scope. ref matches projects.id when it is a UUID and
// projects.aip_ref_code otherwise.
func (r *Repo) FindInScope(ctx context.Context, scope domain.Scope, ref string) ([]domain.ScopedProject, error) {
	var scopeColumn string
	switch scope.Kind {
	case domain.ScopeKindBarangay:
		scopeColumn = "a.barangay_id"
	case domain.ScopeKindCity:
		scopeColumn = "a.city_id"
	default:
		return nil, fmt.Errorf("find project: unsupported scope kind %q", scope.Kind)
	}

	query := postgres.Builder().
		Select("p.id", "p.aip_id", "p.aip_ref_code", "p.category::text", "a.status::text", "a.barangay_id", "a.city_id").
		From("projects p").
		Join("aips a ON a.id = p.aip_id").
		Where(squirrel.Eq{scopeColumn: scope.ID}).
		OrderBy("p.id").
		Limit(2)

	if id, err := uuid.Parse(ref); err == nil {
		query = query.Where(squirrel.Eq{"p.id": id})
	} else {
		query = query.Where(squirrel.Eq{"p.aip_ref_code": ref})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project lookup: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find project %q in scope: %w", ref, err)
	}
	defer rows.Close()

	var result []domain.ScopedProject
	for rows.Next() {
		var (
			p                 domain.ScopedProject
			category, aipStat string
		)
		if err := rows.Scan(&p.ID, &p.AIPID, &p.RefCode, &category, &aipStat, &p.BarangayID, &p.CityID); err != nil {
			return nil, fmt.Errorf("scan scoped project: %w", err)
		}
		p.Category = domain.ProjectCategory(category)
		p.AIPStatus = domain.AIPStatus(aipStat)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scoped projects: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Detail writes
// ---------------------------------------------------------------------------

// UpsertHealthDetails inserts or replaces the health detail row of a project.
func (r *Repo) UpsertHealthDetails(ctx context.Context, d domain.HealthDetails) error {
	query := postgres.Builder().
		Insert("health_project_details").
		Columns("project_id", "program_name", "description", "target_participants",
			"total_target_participants", "updated_by", "updated_at").
		Values(d.ProjectID, d.ProgramName, d.Description, d.TargetParticipants,
			d.TotalTargetParticipants, d.UpdatedBy, squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (project_id) DO UPDATE SET
			program_name = EXCLUDED.program_name,
			description = EXCLUDED.description,
			target_participants = EXCLUDED.target_participants,
			total_target_participants = EXCLUDED.total_target_participants,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`)

	return r.exec(ctx, query, "health_project_details", d.ProjectID)
}

// UpsertInfrastructureDetails inserts or replaces the infrastructure detail row of a project.
func (r *Repo) UpsertInfrastructureDetails(ctx context.Context, d domain.InfrastructureDetails) error {
	query := postgres.Builder().
		Insert("infrastructure_project_details").
		Columns("project_id", "project_name", "contractor_name", "contract_cost",
			"start_date", "target_completion_date", "updated_by", "updated_at").
		Values(d.ProjectID, d.ProjectName, d.ContractorName, d.ContractCost,
			squirrel.Expr("?::date", d.StartDate), squirrel.Expr("?::date", d.TargetCompletionDate),
			d.UpdatedBy, squirrel.Expr("now()")).
		Suffix(`ON CONFLICT (project_id) DO UPDATE SET
			project_name = EXCLUDED.project_name,
			contractor_name = EXCLUDED.contractor_name,
			contract_cost = EXCLUDED.contract_cost,
			start_date = EXCLUDED.start_date,
			target_completion_date = EXCLUDED.target_completion_date,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at`)

	return r.exec(ctx, query, "infrastructure_project_details", d.ProjectID)
}

// ApplyPatch writes the parent project fields of a detail edit.
// Optional patch fields that are nil leave their column unchanged.
func (r *Repo) ApplyPatch(ctx context.Context, projectID uuid.UUID, patch domain.ProjectPatch) error {
	query := postgres.Builder().
		Update("projects").
		Set("total", patch.Total).
		Set("status", string(patch.Status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": projectID})

	if patch.ImplementingAgency != nil {
		query = query.Set("implementing_agency", *patch.ImplementingAgency)
	}
	if patch.SourceOfFunds != nil {
		query = query.Set("source_of_funds", *patch.SourceOfFunds)
	}
	if patch.StartDate != nil {
		query = query.Set("start_date", squirrel.Expr("?::date", *patch.StartDate))
	}
	if patch.CompletionDate != nil {
		query = query.Set("completion_date", squirrel.Expr("?::date", *patch.CompletionDate))
	}
	if patch.ImageURL != nil {
		query = query.Set("image_url", *patch.ImageURL)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build project patch: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "project", projectID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) exec(ctx context.Context, query squirrel.Sqlizer, entity string, id uuid.UUID) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build %s statement: %w", entity, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}
