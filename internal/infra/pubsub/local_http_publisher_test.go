package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mastercraft/internal/delivery/context"
	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishRequestEvent(t *testing.T) {
	var received PushMessage
	var header string
	worker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer worker.Close()

	publisher := NewLocalHTTPPublisher(worker.URL, discardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "trace-1")

	err := publisher.PublishRequestEvent(ctx, &service.RequestEvent{
		Kind:      service.RequestEventCreated,
		RequestID: "r1",
		After:     &entity.ServiceRequest{ID: "r1", ServiceType: "plumbing", Status: entity.RequestStatusPending},
	})
	require.NoError(t, err)

	assert.Equal(t, "trace-1", header)
	assert.Equal(t, "request.created", received.Message.Attributes[AttrKind])
	assert.Equal(t, "r1", received.Message.Attributes[AttrServiceRequestID])
	assert.Equal(t, "trace-1", received.Message.Attributes[AttrTraceID])
	assert.NotEmpty(t, received.Message.MessageID)

	event, err := received.DecodeEvent()
	require.NoError(t, err)
	assert.Equal(t, "trace-1", event.TraceID)
	assert.Equal(t, "plumbing", event.After.ServiceType)
	assert.Nil(t, event.Before)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	worker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer worker.Close()

	publisher := NewLocalHTTPPublisher(worker.URL, discardLogger())

	err := publisher.PublishRequestEvent(context.Background(), &service.RequestEvent{Kind: service.RequestEventCreated, RequestID: "r1"})

	assert.ErrorContains(t, err, "503")
}

func TestPushMessage_DecodeEvent_Invalid(t *testing.T) {
	var msg PushMessage
	msg.Message.Data = "%%%"
	_, err := msg.DecodeEvent()
	assert.ErrorContains(t, err, "decode message data")

	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("{"))
	_, err = msg.DecodeEvent()
	assert.ErrorContains(t, err, "parse request event")
}
