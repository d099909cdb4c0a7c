package firestore

import (
	"context"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	sess session
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{sess: newSession(client)}
}

func (repo *notificationRepository) collection() *firestore.CollectionRef {
	return repo.sess.client.Collection(notificationsCollection)
}

// BatchCreateNotifications creates every notification in one transaction.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	now := repo.sess.now()
	refs := make([]*firestore.DocumentRef, len(notifications))
	for i := range notifications {
		refs[i] = repo.collection().NewDoc()
	}

	err := repo.sess.run(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		for i, n := range notifications {
			doc := fromNotificationDomain(n)
			doc.CreatedAt = now
			if err := tx.Create(refs[i], doc); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to batch create notifications")
	}

	for i, n := range notifications {
		n.ID = refs[i].ID
		n.CreatedAt = now
	}

	return nil
}

// FindNotificationsByUser lists a user's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, error) {
	q := repo.collection().
		Where(fieldUserID, "==", userID).
		OrderBy(fieldCreatedAt, firestore.Desc)
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	snaps, err := repo.sess.getAll(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(snaps))
	for _, snap := range snaps {
		n, err := toNotificationDomain(snap)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode notification %s", snap.Ref.ID)
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkNotificationRead sets the read flag of a notification owned by userID.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	ref := repo.collection().Doc(notificationID)

	err := repo.sess.run(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrNotificationNotFound
			}

			return err
		}

		owner, err := snap.DataAt(fieldUserID)
		if err != nil || owner != userID {
			return repository.ErrNotificationNotFound
		}

		return tx.Update(ref, []firestore.Update{{Path: fieldRead, Value: true}})
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
