// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationTypeNewRequest   NotificationType = "new_request"
	NotificationTypeStatusUpdate NotificationType = "status_update"
	NotificationTypeReviewPrompt NotificationType = "review_prompt"
)

// Notification is an in-app message addressed to a customer or provider.
type Notification struct {
	ID        string           `json:"id"`         // Store-assigned identifier.
	UserID    string           `json:"user_id"`    // Recipient.
	Title     string           `json:"title"`      // Short headline.
	Body      string           `json:"body"`       // Message text.
	Type      NotificationType `json:"type"`       // Notification category.
	RelatedID string           `json:"related_id"` // The service request this notification is about.
	Read      bool             `json:"read"`       // Toggled by the recipient.
	CreatedAt time.Time        `json:"created_at"`
}
