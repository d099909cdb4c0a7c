// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mastercraft/internal/domain/entity"
)

// EventLedgerRepository records which events already had their effects committed.
type EventLedgerRepository interface {
	// RecordEvent stores the event unless its key already exists.
	// It reports applied=false when the event was recorded before.
	RecordEvent(ctx context.Context, event entity.AppliedEvent) (applied bool, err error)
}
