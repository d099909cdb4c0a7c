package service

import (
	"context"

	"mastercraft/internal/domain/entity"
)

// RequestEventKind identifies which lifecycle hook an event is delivered to.
type RequestEventKind string

const (
	RequestEventCreated       RequestEventKind = "request.created"
	RequestEventStatusChanged RequestEventKind = "request.status_changed"
)

// RequestEvent carries immutable snapshots of a service request to the dispatch worker
type RequestEvent struct {
	TraceID   string                 `json:"trace_id,omitempty"` // For distributed tracing
	Kind      RequestEventKind       `json:"kind"`
	RequestID string                 `json:"request_id"`
	Before    *entity.ServiceRequest `json:"before,omitempty"` // Set for status changes only
	After     *entity.ServiceRequest `json:"after"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRequestEvent publishes a request event for async processing
	PublishRequestEvent(ctx context.Context, event *RequestEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
