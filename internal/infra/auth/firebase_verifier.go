package auth

import (
	"context"

	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// rolesClaim is the custom claim set on Firebase users by the admin tooling.
const rolesClaim = "roles"

// idTokenVerifier is the subset of the Firebase Auth client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseVerifier verifies Firebase ID tokens.
type firebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier creates a verifier backed by the Firebase Auth client of app.
func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (service.TokenVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase Auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyToken checks the ID token signature, audience and expiry.
func (v *firebaseVerifier) VerifyToken(ctx context.Context, idToken string) (*service.CallerIdentity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("invalid ID token")
	}

	return &service.CallerIdentity{
		UID:   token.UID,
		Roles: rolesFromClaims(token.Claims),
	}, nil
}

// rolesFromClaims reads the roles custom claim, accepting a list or a single string.
func rolesFromClaims(claims map[string]any) entity.Roles {
	switch v := claims[rolesClaim].(type) {
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}

		return entity.RolesFromStrings(names)
	case []string:
		return entity.RolesFromStrings(v)
	case string:
		return entity.RolesFromStrings([]string{v})
	default:
		return entity.Roles{}
	}
}
