// Package firebase bootstraps the Firebase Admin SDK app shared by Firestore,
// Auth and Cloud Messaging.
package firebase

import (
	"context"
	"log/slog"

	"mastercraft/config"
	"mastercraft/internal/domain/constants"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app. Without a credentials file the SDK falls
// back to Application Default Credentials (or the emulator environment).
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

// Module provides the Firebase app FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewApp),
)

// Required reports whether any configured component talks to Firebase.
func Required(cfg *config.Config) bool {
	if cfg.Store.Driver == constants.StoreDriverFirestore {
		return true
	}
	if cfg.Auth != nil && cfg.Auth.Provider == constants.AuthProviderFirebase {
		return true
	}

	return cfg.Push != nil && cfg.Push.Enabled
}

// ModuleFor returns Module when cfg needs the Firebase app and an empty option otherwise.
func ModuleFor(cfg *config.Config) fx.Option {
	if !Required(cfg) {
		return fx.Options()
	}

	return Module
}
