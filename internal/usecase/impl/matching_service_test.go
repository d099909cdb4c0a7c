package impl

import (
	"context"
	"fmt"
	"testing"

	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/infra/persistence/memory"
	mockRepo "mastercraft/internal/mocks/repository"
	mockSvc "mastercraft/internal/mocks/service"
	"mastercraft/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMatchingWithStore(t *testing.T) (usecase.MatchingUsecase, *memory.Store) {
	store := memory.New()
	svc := NewMatchingService(DispatchServiceParams{
		TxManager: memory.NewTransactionManager(store),
		Logger:    discardLogger(),
	})

	return svc, store
}

func TestMatchingService_OnRequestCreated_ScenarioA(t *testing.T) {
	svc, store := newMatchingWithStore(t)
	seedProviders(t, store,
		&entity.Provider{ID: "p1", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusAvailable},
		&entity.Provider{ID: "p2", Services: []string{"electrical"}, CurrentStatus: entity.ProviderStatusAvailable},
	)

	result, err := svc.OnRequestCreated(context.Background(), &entity.ServiceRequest{ID: "r1", CustomerID: "c1", ServiceType: "plumbing"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsCreated)
	assert.False(t, result.Duplicate)

	notifications := inbox(t, store, "p1")
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationTypeNewRequest, notifications[0].Type)
	assert.Equal(t, "r1", notifications[0].RelatedID)
	assert.False(t, notifications[0].Read)
	assert.NotEmpty(t, notifications[0].ID)
	assert.False(t, notifications[0].CreatedAt.IsZero())
	assert.Empty(t, inbox(t, store, "p2"))
}

func TestMatchingService_OnRequestCreated_RedeliveryIsSuppressed(t *testing.T) {
	svc, store := newMatchingWithStore(t)
	seedProviders(t, store,
		&entity.Provider{ID: "p1", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusAvailable},
	)
	request := &entity.ServiceRequest{ID: "r1", ServiceType: "plumbing"}

	_, err := svc.OnRequestCreated(context.Background(), request)
	require.NoError(t, err)

	result, err := svc.OnRequestCreated(context.Background(), request)
	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	assert.Zero(t, result.NotificationsCreated)
	assert.Len(t, inbox(t, store, "p1"), 1)
}

func TestMatchingService_OnRequestCreated_FanOut(t *testing.T) {
	svc, store := newMatchingWithStore(t)

	const n = 12
	for i := range n {
		seedProviders(t, store, &entity.Provider{
			ID:            fmt.Sprintf("p%02d", i),
			Services:      []string{"plumbing"},
			CurrentStatus: entity.ProviderStatusAvailable,
		})
	}
	seedProviders(t, store, &entity.Provider{ID: "busy", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusOnJob})

	result, err := svc.OnRequestCreated(context.Background(), &entity.ServiceRequest{ID: "r9", ServiceType: "plumbing"})

	require.NoError(t, err)
	assert.Equal(t, n, result.NotificationsCreated)
	for i := range n {
		notifications := inbox(t, store, fmt.Sprintf("p%02d", i))
		require.Len(t, notifications, 1)
		assert.Equal(t, "r9", notifications[0].RelatedID)
	}
	assert.Empty(t, inbox(t, store, "busy"))
}

func TestMatchingService_OnRequestCreated_NoEligibleProviders(t *testing.T) {
	svc, store := newMatchingWithStore(t)
	seedProviders(t, store,
		&entity.Provider{ID: "p2", Services: []string{"electrical"}, CurrentStatus: entity.ProviderStatusAvailable},
	)

	result, err := svc.OnRequestCreated(context.Background(), &entity.ServiceRequest{ID: "r1", ServiceType: "plumbing"})

	require.NoError(t, err)
	assert.Zero(t, result.NotificationsCreated)
	assert.False(t, result.Duplicate)
}

func TestMatchingService_OnRequestCreated_InvalidRequest(t *testing.T) {
	svc, _ := newMatchingWithStore(t)

	_, err := svc.OnRequestCreated(context.Background(), &entity.ServiceRequest{ServiceType: "plumbing"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.OnRequestCreated(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMatchingService_OnRequestCreated_BatchFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	push := mockSvc.NewMockPushService(t)
	errStore := errors.New("deadline exceeded")

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			providerRepo := mockRepo.NewMockProviderRepository(t)
			ledger := mockRepo.NewMockEventLedgerRepository(t)
			notificationRepo := mockRepo.NewMockNotificationRepository(t)

			factory.EXPECT().NewProviderRepository().Return(providerRepo)
			factory.EXPECT().NewEventLedgerRepository().Return(ledger)
			factory.EXPECT().NewNotificationRepository().Return(notificationRepo)
			providerRepo.EXPECT().FindAvailableProvidersByService(ctx, "plumbing").Return([]*entity.Provider{
				{ID: "p1", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusAvailable},
			}, nil)
			ledger.EXPECT().RecordEvent(ctx, entity.AppliedEvent{Handler: entity.HandlerRequestCreated, RequestID: "r1"}).Return(true, nil)
			notificationRepo.EXPECT().BatchCreateNotifications(ctx, mock.Anything).Return(errStore)

			return fn(factory)
		})

	svc := NewMatchingService(DispatchServiceParams{TxManager: txManager, Push: push, Logger: discardLogger()})

	_, err := svc.OnRequestCreated(ctx, &entity.ServiceRequest{ID: "r1", ServiceType: "plumbing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errStore)
	push.AssertNotCalled(t, "SendNotifications", mock.Anything, mock.Anything)
}

func TestMatchingService_OnRequestCreated_PushesAfterCommit(t *testing.T) {
	store := memory.New()
	seedProviders(t, store,
		&entity.Provider{ID: "p1", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusAvailable},
		&entity.Provider{ID: "p2", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusAvailable},
	)
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().
		SendNotifications(mock.Anything, mock.MatchedBy(func(ns []*entity.Notification) bool {
			return len(ns) == 2 && ns[0].ID != "" && ns[1].ID != ""
		})).
		Return(1, 1, nil)

	svc := NewMatchingService(DispatchServiceParams{
		TxManager: memory.NewTransactionManager(store),
		Push:      push,
		Logger:    discardLogger(),
	})

	result, err := svc.OnRequestCreated(context.Background(), &entity.ServiceRequest{ID: "r1", ServiceType: "plumbing"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.NotificationsCreated)
}

func TestMatchingService_OnRequestCreated_PushFailureDoesNotFail(t *testing.T) {
	store := memory.New()
	seedProviders(t, store,
		&entity.Provider{ID: "p1", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusAvailable},
	)
	push := mockSvc.NewMockPushService(t)
	push.EXPECT().SendNotifications(mock.Anything, mock.Anything).Return(0, 0, errors.New("fcm unavailable"))

	svc := NewMatchingService(DispatchServiceParams{
		TxManager: memory.NewTransactionManager(store),
		Push:      push,
		Logger:    discardLogger(),
	})

	result, err := svc.OnRequestCreated(context.Background(), &entity.ServiceRequest{ID: "r1", ServiceType: "plumbing"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.NotificationsCreated)
	assert.Len(t, inbox(t, store, "p1"), 1)
}
