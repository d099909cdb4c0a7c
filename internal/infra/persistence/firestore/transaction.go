package firestore

import (
	"context"

	"mastercraft/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// firestoreTransactionManager implements the domain's TransactionManager interface with Firestore transactions.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory creates repositories bound to one Firestore transaction.
type firestoreRepositoryFactory struct {
	sess session
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs fn inside a Firestore transaction. Firestore retries fn on
// contention, so fn must not keep state across attempts.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		sess := newSession(tm.client)
		sess.tx = tx

		return fn(&firestoreRepositoryFactory{sess: sess})
	})
}

// NewProviderRepository returns a ProviderRepository bound to the transaction.
func (f *firestoreRepositoryFactory) NewProviderRepository() repository.ProviderRepository {
	return &providerRepository{sess: f.sess}
}

// NewNotificationRepository returns a NotificationRepository bound to the transaction.
func (f *firestoreRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return &notificationRepository{sess: f.sess}
}

// NewRequestRepository returns a RequestRepository bound to the transaction.
func (f *firestoreRepositoryFactory) NewRequestRepository() repository.RequestRepository {
	return &requestRepository{sess: f.sess}
}

// NewEventLedgerRepository returns an EventLedgerRepository bound to the transaction.
func (f *firestoreRepositoryFactory) NewEventLedgerRepository() repository.EventLedgerRepository {
	return &eventLedgerRepository{sess: f.sess}
}
