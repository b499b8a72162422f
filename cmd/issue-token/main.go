// Command issue-token mints an access token for local development and
// scripted tests. The token is signed with the configured JWT secret.
//
// Example:
//
//	issue-token -user 5b7c... -role city_official -scope city -scope-id 3f0c...
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/auth"
	"github.com/heartmarshall/aip-review-backend/internal/config"
	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

func main() {
	userFlag := flag.String("user", "", "user id (uuid)")
	roleFlag := flag.String("role", "", "role: citizen|barangay_official|city_official|municipal_official|admin")
	scopeFlag := flag.String("scope", "", "scope kind: barangay|city (optional for admin)")
	scopeIDFlag := flag.String("scope-id", "", "barangay or city id (uuid)")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime; defaults to the configured access token TTL")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	actor, err := parseActor(*userFlag, *roleFlag, *scopeFlag, *scopeIDFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue-token: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	ttl := cfg.Auth.AccessTokenTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(actor)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Now().Add(ttl).Format(time.RFC3339))
}

func parseActor(user, role, scopeKind, scopeID string) (domain.Actor, error) {
	id, err := uuid.Parse(user)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid -user: %w", err)
	}
	actor := domain.Actor{UserID: id, Role: domain.UserRole(role)}
	if !actor.Role.IsValid() {
		return domain.Actor{}, fmt.Errorf("invalid -role %q", role)
	}

	if scopeKind == "" {
		return actor, nil
	}
	kind := domain.ScopeKind(scopeKind)
	if kind != domain.ScopeKindBarangay && kind != domain.ScopeKindCity {
		return domain.Actor{}, fmt.Errorf("invalid -scope %q", scopeKind)
	}
	sid, err := uuid.Parse(scopeID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid -scope-id: %w", err)
	}
	actor.Scope = domain.Scope{Kind: kind, ID: sid}
	return actor, nil
}
