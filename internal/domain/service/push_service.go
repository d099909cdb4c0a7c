package service

import (
	"context"

	"mastercraft/internal/domain/entity"
)

// PushService delivers created notifications to the recipients' devices
type PushService interface {
	// SendNotifications pushes each notification to its recipient.
	// Returns the number of messages accepted and rejected by the push provider.
	SendNotifications(ctx context.Context, notifications []*entity.Notification) (successCount, failureCount int, err error)
}
