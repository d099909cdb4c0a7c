// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mastercraft/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for service request persistence.
var (
	// ErrRequestNotFound is returned when a service request is not found.
	ErrRequestNotFound = errors.New("service request not found")
)

// RequestRepository defines the interface for service request persistence.
type RequestRepository interface {
	// CreateRequest persists a new request; the store assigns ID and timestamps.
	CreateRequest(ctx context.Context, request *entity.ServiceRequest) error

	// FindRequestByID retrieves a request by its ID.
	FindRequestByID(ctx context.Context, id string) (*entity.ServiceRequest, error)

	// UpdateRequestStatus persists status, assigned provider and assignment time of request.
	UpdateRequestStatus(ctx context.Context, request *entity.ServiceRequest) error
}
