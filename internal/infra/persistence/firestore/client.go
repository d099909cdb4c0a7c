// Package firestore contains the Cloud Firestore implementation of the persistence layer.
package firestore

import (
	"context"
	"log/slog"

	"mastercraft/internal/domain/lifecycle"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Collection names shared with the web and mobile clients.
const (
	providersCollection     = "serviceProviders"
	requestsCollection      = "serviceRequests"
	notificationsCollection = "notifications"
	appliedEventsCollection = "appliedEvents"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewClient creates the Firestore client of the Firebase app.
func NewClient(params Params) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// A read of a missing document proves the credentials and the database are reachable.
			_, err := client.Collection(appliedEventsCollection).Doc("_healthcheck").Get(ctx)
			if err != nil && !isNotFound(err) {
				return errors.Wrap(err, "failed to reach Firestore")
			}

			params.Logger.Info("Firestore client ready")

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// Module provides the Firestore repositories FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewTransactionManager,
		NewProviderRepository,
		NewNotificationRepository,
		NewRequestRepository,
		NewEventLedgerRepository,
	),
)
