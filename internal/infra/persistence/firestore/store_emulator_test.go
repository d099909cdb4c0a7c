package firestore

import (
	"context"
	"os"
	"testing"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newEmulatorClient connects to the Firestore emulator named by FIRESTORE_EMULATOR_HOST.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "mastercraft-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestEmulator_ProviderLifecycle(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	repo := NewProviderRepository(client)
	id := "p-" + uuid.NewString()
	service := "svc-" + uuid.NewString()

	require.NoError(t, repo.UpsertProvider(ctx, &entity.Provider{ID: id, Name: "Pat", Services: []string{service}}))
	require.NoError(t, repo.ApplyProviderUpdate(ctx, entity.ProviderUpdate{ProviderID: id, Status: entity.ProviderStatusOnJob}))

	available, err := repo.FindAvailableProvidersByService(ctx, service)
	require.NoError(t, err)
	assert.Empty(t, available)

	require.NoError(t, repo.ApplyProviderUpdate(ctx, entity.ProviderUpdate{
		ProviderID: id, Status: entity.ProviderStatusAvailable, CompletedJobsDelta: 1,
	}))

	// Re-saving the profile keeps status and counters.
	require.NoError(t, repo.UpsertProvider(ctx, &entity.Provider{ID: id, Name: "Pat B", Services: []string{service}}))

	provider, err := repo.FindProviderByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Pat B", provider.Name)
	assert.Equal(t, entity.ProviderStatusAvailable, provider.CurrentStatus)
	assert.Equal(t, 1, provider.CompletedJobs)

	err = repo.ApplyProviderUpdate(ctx, entity.ProviderUpdate{ProviderID: "missing-" + id, Status: entity.ProviderStatusOnJob})
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)
}

func TestEmulator_LedgerInTransaction(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	tm := NewTransactionManager(client)
	event := entity.AppliedEvent{Handler: entity.HandlerRequestCreated, RequestID: "r-" + uuid.NewString()}
	userID := "u-" + uuid.NewString()

	apply := func() (bool, error) {
		var applied bool
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			var err error
			applied, err = f.NewEventLedgerRepository().RecordEvent(ctx, event)
			if err != nil || !applied {
				return err
			}

			return f.NewNotificationRepository().BatchCreateNotifications(ctx, []*entity.Notification{
				{UserID: userID, Title: "New Service Request", Type: entity.NotificationTypeNewRequest, RelatedID: event.RequestID},
			})
		})

		return applied, err
	}

	applied, err := apply()
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = apply()
	require.NoError(t, err)
	assert.False(t, applied)

	notifications, err := NewNotificationRepository(client).FindNotificationsByUser(ctx, userID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestEmulator_RollbackOnError(t *testing.T) {
	client := newEmulatorClient(t)
	ctx := context.Background()
	userID := "u-" + uuid.NewString()

	err := NewTransactionManager(client).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewNotificationRepository().BatchCreateNotifications(ctx, []*entity.Notification{{UserID: userID}}); err != nil {
			return err
		}

		return errors.New("abort")
	})
	require.Error(t, err)

	notifications, err := NewNotificationRepository(client).FindNotificationsByUser(ctx, userID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
