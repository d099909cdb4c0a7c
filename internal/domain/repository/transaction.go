package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to apply a batch of effects atomically without
// depending on a specific store (Firestore, GORM or the in-memory store).
type TransactionManager interface {
	// Execute runs a function within a transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	// Stores with optimistic concurrency may invoke fn more than once, and may
	// require every read of fn to happen before its first write.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// NewProviderRepository returns a ProviderRepository bound to the current transaction.
	NewProviderRepository() ProviderRepository

	// NewNotificationRepository returns a NotificationRepository bound to the current transaction.
	NewNotificationRepository() NotificationRepository

	// NewRequestRepository returns a RequestRepository bound to the current transaction.
	NewRequestRepository() RequestRepository

	// NewEventLedgerRepository returns an EventLedgerRepository bound to the current transaction.
	NewEventLedgerRepository() EventLedgerRepository
}
