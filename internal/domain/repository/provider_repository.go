// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mastercraft/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for provider persistence.
var (
	// ErrProviderNotFound is returned when a provider is not found.
	ErrProviderNotFound = errors.New("provider not found")
)

// ProviderRepository defines the interface for provider persistence.
type ProviderRepository interface {
	// FindProviderByID retrieves a provider by its ID.
	FindProviderByID(ctx context.Context, id string) (*entity.Provider, error)

	// FindAvailableProvidersByService lists available providers offering serviceType.
	FindAvailableProvidersByService(ctx context.Context, serviceType string) ([]*entity.Provider, error)

	// FindProvidersByService lists providers offering serviceType, or every provider when serviceType is empty.
	FindProvidersByService(ctx context.Context, serviceType string) ([]*entity.Provider, error)

	// UpsertProvider creates or replaces the provider profile (name and services).
	// Status, location and counters of an existing provider are preserved.
	UpsertProvider(ctx context.Context, provider *entity.Provider) error

	// UpdateProviderLocation stores the provider's last known location.
	UpdateProviderLocation(ctx context.Context, id string, location entity.GeoPoint) error

	// ApplyProviderUpdate applies a partial status update and an atomic counter increment.
	ApplyProviderUpdate(ctx context.Context, update entity.ProviderUpdate) error
}
