package auth

import (
	"context"
	"testing"

	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIDTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s stubIDTokenVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier_VerifyToken(t *testing.T) {
	verifier := &firebaseVerifier{client: stubIDTokenVerifier{token: &firebaseauth.Token{
		UID:    "p1",
		Claims: map[string]any{"roles": []any{"provider", 7, "admin"}},
	}}}

	caller, err := verifier.VerifyToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.Equal(t, "p1", caller.UID)
	assert.Equal(t, entity.Roles{entity.RoleProvider, entity.RoleAdmin}, caller.Roles)
}

func TestFirebaseVerifier_InvalidToken(t *testing.T) {
	verifier := &firebaseVerifier{client: stubIDTokenVerifier{err: errors.New("ID token has expired")}}

	_, err := verifier.VerifyToken(context.Background(), "id-token")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRolesFromClaims(t *testing.T) {
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, rolesFromClaims(map[string]any{"roles": "customer"}))
	assert.Equal(t, entity.Roles{entity.RoleProvider}, rolesFromClaims(map[string]any{"roles": []string{"provider"}}))
	assert.Empty(t, rolesFromClaims(map[string]any{}))
}
