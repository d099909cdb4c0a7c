package usecase

import (
	"context"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/service"
)

// NotificationUsecase exposes the caller's notification inbox
type NotificationUsecase interface {
	// ListNotifications returns the caller's notifications, newest first
	ListNotifications(ctx context.Context, caller *service.CallerIdentity, limit, offset int) ([]*entity.Notification, error)

	// MarkNotificationRead sets the read flag of one of the caller's notifications
	MarkNotificationRead(ctx context.Context, caller *service.CallerIdentity, notificationID string) error
}
