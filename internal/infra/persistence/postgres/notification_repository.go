package postgres

import (
	"context"
	"time"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotifications persists the notifications in one transaction.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	now := time.Now()
	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate notification ID")
		}

		notificationM := fromNotificationDomain(n)
		notificationM.ID = id.String()
		notificationM.CreatedAt = now
		notificationModels = append(notificationModels, notificationM)
	}

	// CreateInBatches is only atomic inside a transaction since default transactions are disabled.
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(notificationModels, notificationBatchSize).Error
	})
	if err != nil {
		return translateWriteError(err, "failed to batch create notifications")
	}

	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// FindNotificationsByUser retrieves a user's notifications, newest first, with pagination.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationRead sets the read flag of a notification owned by userID.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      entity.NotificationType(data.Type),
		RelatedID: data.RelatedID,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      string(data.Type),
		RelatedID: data.RelatedID,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}
}
