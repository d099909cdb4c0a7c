package postgres

import (
	"context"
	"time"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventLedgerRepository implements the repository.EventLedgerRepository interface.
type eventLedgerRepository struct {
	db *gorm.DB
}

// NewEventLedgerRepository is the constructor for eventLedgerRepository.
func NewEventLedgerRepository(db *gorm.DB) repository.EventLedgerRepository {
	return &eventLedgerRepository{
		db: db,
	}
}

// RecordEvent inserts the ledger row unless its key exists. A concurrent
// delivery of the same event waits on the key and then inserts nothing.
func (repo *eventLedgerRepository) RecordEvent(ctx context.Context, event entity.AppliedEvent) (bool, error) {
	eventM := &model.AppliedEventModel{
		Key:          event.Key(),
		Handler:      event.Handler,
		RequestID:    event.RequestID,
		TargetStatus: string(event.TargetStatus),
		AppliedAt:    event.AppliedAt,
	}
	if eventM.AppliedAt.IsZero() {
		eventM.AppliedAt = time.Now()
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(eventM)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to record applied event")
	}

	return result.RowsAffected == 1, nil
}
