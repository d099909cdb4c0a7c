// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Event handler names recorded in the applied event ledger.
const (
	HandlerRequestCreated = "request.created"
	HandlerStatusChanged  = "request.status_changed"
)

// AppliedEvent records that the effects of one event were committed.
type AppliedEvent struct {
	Handler      string        `json:"handler"`
	RequestID    string        `json:"request_id"`
	TargetStatus RequestStatus `json:"target_status,omitempty"`
	AppliedAt    time.Time     `json:"applied_at"`
}

// Key returns the unique ledger key of the event.
func (e AppliedEvent) Key() string {
	parts := []string{e.Handler, e.RequestID}
	if e.TargetStatus != "" {
		parts = append(parts, string(e.TargetStatus))
	}

	return strings.Join(parts, ":")
}
