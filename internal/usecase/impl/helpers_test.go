package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/infra/persistence/memory"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seedProviders stores providers and applies their status and counters.
func seedProviders(t *testing.T, store *memory.Store, providers ...*entity.Provider) {
	t.Helper()

	ctx := context.Background()
	repo := memory.NewProviderRepository(store)
	for _, p := range providers {
		status, jobs, location := p.CurrentStatus, p.CompletedJobs, p.CurrentLocation
		require.NoError(t, repo.UpsertProvider(ctx, &entity.Provider{ID: p.ID, Name: p.Name, Services: p.Services, CurrentStatus: status}))
		if location != nil {
			require.NoError(t, repo.UpdateProviderLocation(ctx, p.ID, *location))
		}
		if jobs != 0 {
			require.NoError(t, repo.ApplyProviderUpdate(ctx, entity.ProviderUpdate{ProviderID: p.ID, CompletedJobsDelta: jobs}))
		}
	}
}

func inbox(t *testing.T, store *memory.Store, userID string) []*entity.Notification {
	t.Helper()

	notifications, err := memory.NewNotificationRepository(store).FindNotificationsByUser(context.Background(), userID, 0, 0)
	require.NoError(t, err)

	return notifications
}

func findProvider(t *testing.T, store *memory.Store, id string) *entity.Provider {
	t.Helper()

	p, err := memory.NewProviderRepository(store).FindProviderByID(context.Background(), id)
	require.NoError(t, err)

	return p
}

func customerCaller(uid string) *service.CallerIdentity {
	return &service.CallerIdentity{UID: uid, Roles: entity.Roles{entity.RoleCustomer}}
}

func providerCaller(uid string) *service.CallerIdentity {
	return &service.CallerIdentity{UID: uid, Roles: entity.Roles{entity.RoleProvider}}
}
