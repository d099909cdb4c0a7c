package postgres

import (
	"context"
	"io/fs"
	"testing"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the repository schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedProvider(t *testing.T, db *gorm.DB, p *entity.Provider) {
	t.Helper()

	require.NoError(t, NewProviderRepository(db).UpsertProvider(context.Background(), p))
}

func TestProviderRepository_FindByService(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProviderRepository(db)

	seedProvider(t, db, &entity.Provider{ID: "p2", Services: []string{"plumbing", "electrical"}})
	seedProvider(t, db, &entity.Provider{ID: "p1", Services: []string{"plumbing"}})
	seedProvider(t, db, &entity.Provider{ID: "p3", Services: []string{"plumbing"}, CurrentStatus: entity.ProviderStatusOnJob})
	seedProvider(t, db, &entity.Provider{ID: "p4", Services: []string{"electrical"}})

	available, err := repo.FindAvailableProvidersByService(ctx, "plumbing")
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "p1", available[0].ID)
	assert.Equal(t, "p2", available[1].ID)
	assert.Equal(t, []string{"electrical", "plumbing"}, available[1].Services)

	all, err := repo.FindProvidersByService(ctx, "plumbing")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	everyone, err := repo.FindProvidersByService(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everyone, 4)
}

func TestProviderRepository_UpsertKeepsOperationalFields(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProviderRepository(db)

	seedProvider(t, db, &entity.Provider{ID: "p1", Name: "Pat", Services: []string{"plumbing"}})
	require.NoError(t, repo.UpdateProviderLocation(ctx, "p1", entity.GeoPoint{Latitude: 24.7136, Longitude: 46.6753}))
	require.NoError(t, repo.ApplyProviderUpdate(ctx, entity.ProviderUpdate{ProviderID: "p1", Status: entity.ProviderStatusOnJob, CompletedJobsDelta: 3}))

	profile := &entity.Provider{ID: "p1", Name: "Pat B", Services: []string{"hvac"}, CurrentStatus: entity.ProviderStatusAvailable}
	require.NoError(t, repo.UpsertProvider(ctx, profile))

	assert.Equal(t, "Pat B", profile.Name)
	assert.Equal(t, []string{"hvac"}, profile.Services)
	assert.Equal(t, entity.ProviderStatusOnJob, profile.CurrentStatus)
	assert.Equal(t, 3, profile.CompletedJobs)
	require.NotNil(t, profile.CurrentLocation)
	assert.InDelta(t, 24.7136, profile.CurrentLocation.Latitude, 1e-9)
}

func TestProviderRepository_ApplyProviderUpdate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProviderRepository(db)
	seedProvider(t, db, &entity.Provider{ID: "p1", Services: []string{"plumbing"}})

	require.NoError(t, repo.ApplyProviderUpdate(ctx, entity.ProviderUpdate{ProviderID: "p1", CompletedJobsDelta: 1}))
	require.NoError(t, repo.ApplyProviderUpdate(ctx, entity.ProviderUpdate{ProviderID: "p1", CompletedJobsDelta: 1}))

	p, err := repo.FindProviderByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.CompletedJobs)
	assert.Equal(t, entity.ProviderStatusAvailable, p.CurrentStatus)

	err = repo.ApplyProviderUpdate(ctx, entity.ProviderUpdate{ProviderID: "ghost", Status: entity.ProviderStatusOnJob})
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)

	_, err = repo.FindProviderByID(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrProviderNotFound)
}

func TestRequestRepository_CreateFindUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestRepository(newTestDB(t))

	request := &entity.ServiceRequest{
		CustomerID:  "c1",
		ServiceType: "plumbing",
		Location:    &entity.GeoPoint{Latitude: 1, Longitude: 2},
		Status:      entity.RequestStatusPending,
	}
	require.NoError(t, repo.CreateRequest(ctx, request))
	require.NotEmpty(t, request.ID)
	assert.False(t, request.CreatedAt.IsZero())

	request.Status = entity.RequestStatusAssigned
	request.AssignedProvider = "p1"
	require.NoError(t, repo.UpdateRequestStatus(ctx, request))

	stored, err := repo.FindRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAssigned, stored.Status)
	assert.Equal(t, "p1", stored.AssignedProvider)
	require.NotNil(t, stored.Location)
	assert.InDelta(t, 2.0, stored.Location.Longitude, 1e-9)

	_, err = repo.FindRequestByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)

	err = repo.UpdateRequestStatus(ctx, &entity.ServiceRequest{ID: "missing", Status: entity.RequestStatusCancelled})
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)
}

func TestNotificationRepository_BatchAndInbox(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository(newTestDB(t))

	batch := []*entity.Notification{
		{UserID: "c1", Title: "first", Type: entity.NotificationTypeStatusUpdate, RelatedID: "r1"},
		{UserID: "c1", Title: "second", Type: entity.NotificationTypeReviewPrompt, RelatedID: "r1"},
		{UserID: "p1", Title: "other", Type: entity.NotificationTypeNewRequest, RelatedID: "r1"},
	}
	require.NoError(t, repo.BatchCreateNotifications(ctx, batch))
	for _, n := range batch {
		assert.NotEmpty(t, n.ID)
		assert.False(t, n.CreatedAt.IsZero())
	}

	inbox, err := repo.FindNotificationsByUser(ctx, "c1", 10, 0)
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, "second", inbox[0].Title)
	assert.False(t, inbox[0].Read)

	require.NoError(t, repo.MarkNotificationRead(ctx, "c1", inbox[1].ID))
	assert.ErrorIs(t, repo.MarkNotificationRead(ctx, "p1", inbox[1].ID), repository.ErrNotificationNotFound)

	page, err := repo.FindNotificationsByUser(ctx, "c1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Title)
	assert.True(t, page[0].Read)
}

func TestEventLedgerRepository_RecordsOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewEventLedgerRepository(newTestDB(t))
	event := entity.AppliedEvent{Handler: entity.HandlerStatusChanged, RequestID: "r1", TargetStatus: entity.RequestStatusCompleted}

	applied, err := repo.RecordEvent(ctx, event)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.RecordEvent(ctx, event)
	require.NoError(t, err)
	assert.False(t, applied)

	event.TargetStatus = entity.RequestStatusCancelled
	applied, err = repo.RecordEvent(ctx, event)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestTransactionManager_RollsBackEverything(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedProvider(t, db, &entity.Provider{ID: "p1", Services: []string{"plumbing"}})
	tm := NewTransactionManager(db)
	event := entity.AppliedEvent{Handler: entity.HandlerStatusChanged, RequestID: "r1", TargetStatus: entity.RequestStatusCompleted}

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewEventLedgerRepository().RecordEvent(ctx, event); err != nil {
			return err
		}
		if err := f.NewNotificationRepository().BatchCreateNotifications(ctx, []*entity.Notification{{UserID: "c1", Title: "t", Body: "b", Type: entity.NotificationTypeStatusUpdate, RelatedID: "r1"}}); err != nil {
			return err
		}
		if err := f.NewProviderRepository().ApplyProviderUpdate(ctx, entity.ProviderUpdate{ProviderID: "p1", CompletedJobsDelta: 1}); err != nil {
			return err
		}

		return errors.New("abort")
	})
	require.EqualError(t, err, "abort")

	p, err := NewProviderRepository(db).FindProviderByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.CompletedJobs)

	inbox, err := NewNotificationRepository(db).FindNotificationsByUser(ctx, "c1", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// The ledger entry was rolled back too, so the event can still be applied.
	applied, err := NewEventLedgerRepository(db).RecordEvent(ctx, event)
	require.NoError(t, err)
	assert.True(t, applied)
}

func TestEmbeddedMigrations(t *testing.T) {
	sqlDB, err := newTestDB(t).DB()
	require.NoError(t, err)

	migrations, err := fs.Sub(embeddedMigrations, "migrations")
	require.NoError(t, err)

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations)
	require.NoError(t, err)

	sources := provider.ListSources()
	require.Len(t, sources, 1)
	assert.Equal(t, int64(1), sources[0].Version)
}
