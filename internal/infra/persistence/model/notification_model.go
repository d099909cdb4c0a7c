package model

import "time"

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents an in-app message addressed to a customer or provider.
type NotificationModel struct {
	ID        string    `gorm:"type:text;primaryKey"`
	UserID    string    `gorm:"type:text;not null;index:idx_notifications_user_created,priority:1"`
	Title     string    `gorm:"type:text;not null"`
	Body      string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:text;not null"`
	RelatedID string    `gorm:"type:text;not null;index"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index:idx_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
