package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/aip-review-backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation.
// Tokens carry the caller's role and administrative scope so that the
// transport layer can build a domain.Actor without a database lookup.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with role and scope.
type accessClaims struct {
	jwt.RegisteredClaims
	Role      string `json:"role,omitempty"`
	ScopeKind string `json:"scope_kind,omitempty"`
	ScopeID   string `json:"scope_id,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT for the actor.
func (m *JWTManager) GenerateAccessToken(actor domain.Actor) (string, error) {
	if actor.UserID == uuid.Nil {
		return "", fmt.Errorf("actor user id is empty")
	}
	if !actor.Role.IsValid() {
		return "", fmt.Errorf("invalid role %q", actor.Role)
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: actor.Role.String(),
	}
	if actor.Scope.IsSet() {
		claims.ScopeKind = actor.Scope.Kind.String()
		claims.ScopeID = actor.Scope.ID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the actor it was issued for.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.Actor{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return domain.Actor{}, fmt.Errorf("invalid role claim %q", claims.Role)
	}

	scope, err := parseScope(claims.ScopeKind, claims.ScopeID)
	if err != nil {
		return domain.Actor{}, err
	}

	return domain.Actor{UserID: userID, Role: role, Scope: scope}, nil
}

func parseScope(kind, id string) (domain.Scope, error) {
	if kind == "" && id == "" {
		return domain.Scope{Kind: domain.ScopeKindNone}, nil
	}

	k := domain.ScopeKind(kind)
	if k != domain.ScopeKindBarangay && k != domain.ScopeKindCity {
		return domain.Scope{}, fmt.Errorf("invalid scope_kind claim %q", kind)
	}

	scopeID, err := uuid.Parse(id)
	if err != nil {
		return domain.Scope{}, fmt.Errorf("invalid scope_id claim: %w", err)
	}

	return domain.Scope{Kind: k, ID: scopeID}, nil
}
