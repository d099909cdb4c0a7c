package notification

import (
	"context"
	"log/slog"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// maxMessagesPerBatch is the FCM limit for one SendEach call.
const maxMessagesPerBatch = 500

// messageSender is the subset of the FCM client used here.
type messageSender interface {
	SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client      messageSender
	topicPrefix string
	logger      *slog.Logger
}

// NewFirebaseService creates a push service that sends each notification to the
// recipient's FCM topic (topicPrefix + userID).
func NewFirebaseService(ctx context.Context, app *firebase.App, topicPrefix string, logger *slog.Logger) (service.PushService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client:      client,
		topicPrefix: topicPrefix,
		logger:      logger,
	}, nil
}

// SendNotifications pushes the notifications in batches of at most 500 messages.
func (s *firebaseService) SendNotifications(ctx context.Context, notifications []*entity.Notification) (successCount, failureCount int, err error) {
	messages := make([]*messaging.Message, 0, len(notifications))
	for _, n := range notifications {
		if n == nil || n.UserID == "" {
			continue
		}
		messages = append(messages, s.toMessage(n))
	}

	for start := 0; start < len(messages); start += maxMessagesPerBatch {
		end := min(start+maxMessagesPerBatch, len(messages))

		response, err := s.client.SendEach(ctx, messages[start:end])
		if err != nil {
			return successCount, failureCount + len(messages) - start, errors.Wrap(err, "failed to send push batch")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for i, r := range response.Responses {
			if r.Error != nil {
				s.logger.WarnContext(ctx, "Push delivery failed",
					slog.String("topic", messages[start+i].Topic),
					slog.Any("error", r.Error),
				)
			}
		}
	}

	return successCount, failureCount, nil
}

func (s *firebaseService) toMessage(n *entity.Notification) *messaging.Message {
	return &messaging.Message{
		Topic: s.topicPrefix + n.UserID,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"notificationId": n.ID,
			"type":           string(n.Type),
			"relatedId":      n.RelatedID,
		},
	}
}
