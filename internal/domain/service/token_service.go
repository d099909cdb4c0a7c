package service

import (
	"context"

	"mastercraft/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of HMAC signed access tokens.
type Claims struct {
	UserID string   `json:"uid"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// CallerIdentity is the verified identity of an API caller.
type CallerIdentity struct {
	UID   string
	Roles entity.Roles
}

// HasRole reports whether the caller carries role.
func (c *CallerIdentity) HasRole(role entity.Role) bool {
	return c != nil && c.Roles.Contains(role)
}

// TokenVerifier verifies bearer tokens presented by API callers.
type TokenVerifier interface {
	// VerifyToken returns the caller identity carried by a valid token.
	VerifyToken(ctx context.Context, token string) (*CallerIdentity, error)
}
