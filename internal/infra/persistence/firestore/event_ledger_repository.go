package firestore

import (
	"context"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// eventLedgerRepository implements the repository.EventLedgerRepository interface.
// Each applied event is a document keyed by its ledger key.
type eventLedgerRepository struct {
	sess session
}

// NewEventLedgerRepository is the constructor for eventLedgerRepository.
func NewEventLedgerRepository(client *firestore.Client) repository.EventLedgerRepository {
	return &eventLedgerRepository{sess: newSession(client)}
}

// RecordEvent creates the ledger document unless it already exists.
func (repo *eventLedgerRepository) RecordEvent(ctx context.Context, event entity.AppliedEvent) (bool, error) {
	ref := repo.sess.client.Collection(appliedEventsCollection).Doc(event.Key())
	if event.AppliedAt.IsZero() {
		event.AppliedAt = repo.sess.now()
	}

	if repo.sess.tx == nil {
		if _, err := ref.Create(ctx, fromAppliedEventDomain(event)); err != nil {
			if isAlreadyExists(err) {
				return false, nil
			}

			return false, errors.Wrap(err, "failed to record applied event")
		}

		return true, nil
	}

	snap, err := repo.sess.tx.Get(ref)
	if err != nil && !isNotFound(err) {
		return false, errors.Wrap(err, "failed to read applied event")
	}
	if snap != nil && snap.Exists() {
		return false, nil
	}

	if err := repo.sess.tx.Create(ref, fromAppliedEventDomain(event)); err != nil {
		return false, errors.Wrap(err, "failed to record applied event")
	}

	return true, nil
}
