package impl

import (
	"context"

	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification inbox service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// ListNotifications returns a page of the caller's notifications, newest first
func (s *notificationService) ListNotifications(ctx context.Context, caller *service.CallerIdentity, limit, offset int) ([]*entity.Notification, error) {
	if caller == nil || caller.UID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, caller.UID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkNotificationRead marks one of the caller's notifications as read
func (s *notificationService) MarkNotificationRead(ctx context.Context, caller *service.CallerIdentity, notificationID string) error {
	if caller == nil || caller.UID == "" {
		return domainerrors.ErrUnauthenticated
	}

	if err := s.notificationRepo.MarkNotificationRead(ctx, caller.UID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.WithStack(domainerrors.ErrNotificationNotFound)
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
