// Package auth provides concrete implementations of the caller token verification service.
package auth

import (
	"context"
	"strings"

	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtVerifier verifies HMAC signed access tokens issued by a trusted gateway.
type jwtVerifier struct {
	secret []byte
	issuer string // Expected "iss" claim; empty accepts any issuer.
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(secret, issuer string) (service.TokenVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// VerifyToken parses and validates the token and returns the caller it names.
func (v *jwtVerifier) VerifyToken(_ context.Context, tokenString string) (*service.CallerIdentity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid token")
	}

	uid := claims.UserID
	if uid == "" {
		uid = claims.Subject
	}
	if uid == "" {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("token has no subject")
	}

	return &service.CallerIdentity{
		UID:   uid,
		Roles: entity.RolesFromStrings(claims.Roles),
	}, nil
}
