package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCity creates a city and returns its id.
func SeedCity(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO cities (id, name) VALUES ($1, $2)`,
		id, "City "+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCity: %v", err)
	}
	return id
}

// SeedBarangay creates a barangay inside cityID and returns its id.
func SeedBarangay(t *testing.T, pool *pgxpool.Pool, cityID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO barangays (id, city_id, name) VALUES ($1, $2, $3)`,
		id, cityID, "Barangay "+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBarangay: %v", err)
	}
	return id
}

// SeedProfile creates a profile with the given role and returns it.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.Profile {
	t.Helper()

	suffix := uniqueSuffix()
	name := "Official " + suffix
	email := "official-" + suffix + "@example.gov"
	profile := domain.Profile{
		ID:       uuid.New(),
		FullName: &name,
		Email:    &email,
		Role:     role,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, full_name, email, role) VALUES ($1, $2, $3, $4)`,
		profile.ID, name, email, string(role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return profile
}

// SeedAIP creates an AIP owned by scope in the given status.
func SeedAIP(t *testing.T, pool *pgxpool.Pool, scope domain.Scope, status domain.AIPStatus) domain.AIP {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	aip := domain.AIP{
		ID:              uuid.New(),
		FiscalYear:      2026,
		Title:           "AIP " + uniqueSuffix(),
		Status:          status,
		StatusUpdatedAt: now,
		CreatedAt:       now,
	}
	switch scope.Kind {
	case domain.ScopeKindBarangay:
		aip.BarangayID = &scope.ID
	case domain.ScopeKindCity:
		aip.CityID = &scope.ID
	default:
		t.Fatalf("testhelper: SeedAIP: scope kind %q", scope.Kind)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO aips (id, barangay_id, city_id, fiscal_year, title, status, status_updated_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		aip.ID, aip.BarangayID, aip.CityID, aip.FiscalYear, aip.Title, string(status), now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAIP: %v", err)
	}
	return aip
}

// SeedProject creates a project under aipID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, aipID uuid.UUID, refCode string, category domain.ProjectCategory) domain.Project {
	t.Helper()

	project := domain.Project{
		ID:          uuid.New(),
		AIPID:       aipID,
		RefCode:     refCode,
		Category:    category,
		Description: "Project " + uniqueSuffix(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, aip_id, aip_ref_code, category, description) VALUES ($1, $2, $3, $4, $5)`,
		project.ID, aipID, refCode, string(category), project.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return project
}
