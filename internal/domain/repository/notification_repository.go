// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mastercraft/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification persistence.
type NotificationRepository interface {
	// BatchCreateNotifications persists all notifications or none of them.
	// IDs and creation times are assigned by the store and written back to the entities.
	BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// FindNotificationsByUser lists a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, error)

	// MarkNotificationRead sets the read flag of a notification owned by userID.
	MarkNotificationRead(ctx context.Context, userID, notificationID string) error
}
