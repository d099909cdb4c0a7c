package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	deliverycontext "mastercraft/internal/delivery/context"
	"mastercraft/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Message attribute names shared with the dispatch worker.
const (
	AttrTraceID          = "request_id"
	AttrKind             = "kind"
	AttrServiceRequestID = "service_request_id"
)

const localSubscription = "projects/local/subscriptions/dispatch-sub"

// PushMessage is the body Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeEvent base64-decodes the payload into a RequestEvent.
func (m *PushMessage) DecodeEvent() (*service.RequestEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.RequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "parse request event")
	}

	return &event, nil
}

// encodeEvent stamps the trace ID from ctx when the event has none and
// returns the JSON payload with its routing attributes.
func encodeEvent(ctx context.Context, event *service.RequestEvent) ([]byte, map[string]string, error) {
	if event.TraceID == "" {
		event.TraceID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attrs := map[string]string{
		AttrKind:             string(event.Kind),
		AttrServiceRequestID: event.RequestID,
	}
	if event.TraceID != "" {
		attrs[AttrTraceID] = event.TraceID
	}

	return data, attrs, nil
}

func newPushMessage(data []byte, attrs map[string]string, now time.Time) PushMessage {
	var msg PushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return msg
}
