package auth

import (
	"context"
	"log/slog"

	"mastercraft/config"
	"mastercraft/internal/domain/constants"
	"mastercraft/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for TokenVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewTokenVerifier creates the TokenVerifier selected by configuration
func NewTokenVerifier(params VerifierParams) (service.TokenVerifier, error) {
	cfg := params.Config.Auth
	if cfg == nil {
		return nil, errors.New("auth configuration is required")
	}

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		if params.App == nil {
			return nil, errors.New("firebase app is required for firebase auth")
		}
		params.Logger.Info("Verifying callers with Firebase ID tokens")

		return NewFirebaseVerifier(params.Ctx, params.App)

	case constants.AuthProviderJWT:
		params.Logger.Info("Verifying callers with HMAC signed tokens", slog.String("issuer", cfg.Issuer))

		return NewJWTVerifier(cfg.JWTSecret, cfg.Issuer)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}

// Module provides the auth FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenVerifier),
)
