package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"mastercraft/internal/domain/entity"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	batches [][]*messaging.Message
	failAt  int // 1-based batch index that fails; 0 never fails
}

func (r *recordingSender) SendEach(_ context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error) {
	r.batches = append(r.batches, messages)
	if len(r.batches) == r.failAt {
		return nil, errors.New("unavailable")
	}

	responses := make([]*messaging.SendResponse, len(messages))
	for i := range messages {
		responses[i] = &messaging.SendResponse{Success: true, MessageID: fmt.Sprintf("m%d", i)}
	}

	return &messaging.BatchResponse{SuccessCount: len(messages), Responses: responses}, nil
}

func newTestService(sender messageSender) *firebaseService {
	return &firebaseService{
		client:      sender,
		topicPrefix: "user_",
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestFirebaseService_SendNotifications(t *testing.T) {
	sender := &recordingSender{}
	svc := newTestService(sender)

	success, failure, err := svc.SendNotifications(context.Background(), []*entity.Notification{
		{ID: "n1", UserID: "c1", Title: "Service Request Update", Body: "Your service request status has changed to: completed", Type: entity.NotificationTypeStatusUpdate, RelatedID: "r1"},
		nil,
		{ID: "n2", UserID: ""},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, success)
	assert.Equal(t, 0, failure)
	require.Len(t, sender.batches, 1)
	msg := sender.batches[0][0]
	assert.Equal(t, "user_c1", msg.Topic)
	assert.Equal(t, "Service Request Update", msg.Notification.Title)
	assert.Equal(t, "r1", msg.Data["relatedId"])
	assert.Equal(t, "status_update", msg.Data["type"])
}

func TestFirebaseService_Batches(t *testing.T) {
	sender := &recordingSender{failAt: 2}
	svc := newTestService(sender)

	notifications := make([]*entity.Notification, 1200)
	for i := range notifications {
		notifications[i] = &entity.Notification{ID: fmt.Sprintf("n%d", i), UserID: fmt.Sprintf("p%d", i)}
	}

	success, failure, err := svc.SendNotifications(context.Background(), notifications)

	require.Error(t, err)
	require.Len(t, sender.batches, 2)
	assert.Len(t, sender.batches[0], 500)
	assert.Equal(t, 500, success)
	assert.Equal(t, 700, failure)
}
