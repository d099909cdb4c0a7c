package usecase

import (
	"context"

	"mastercraft/internal/domain/dispatch"
	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/service"
)

// NearbyProvidersInput is the query of the nearby provider search.
// Nil fields were not sent by the caller.
type NearbyProvidersInput struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	ServiceType string   `json:"serviceType,omitempty"`
	MaxDistance *float64 `json:"maxDistance,omitempty"` // Kilometers
}

// ProviderSearchUsecase finds providers around a location
type ProviderSearchUsecase interface {
	// FindNearbyProviders returns providers within the radius sorted by distance
	FindNearbyProviders(ctx context.Context, caller *service.CallerIdentity, input *NearbyProvidersInput) ([]dispatch.NearbyProvider, error)
}

// UpsertProviderInput represents a provider's profile update
type UpsertProviderInput struct {
	Name     string   `json:"name" validate:"required,max=120"`
	Services []string `json:"services" validate:"required,min=1,dive,required,max=64"`
}

// ProviderUsecase manages the calling provider's own profile
type ProviderUsecase interface {
	// GetProvider returns the caller's provider profile
	GetProvider(ctx context.Context, caller *service.CallerIdentity) (*entity.Provider, error)

	// UpsertProvider creates or updates the caller's provider profile
	UpsertProvider(ctx context.Context, caller *service.CallerIdentity, input *UpsertProviderInput) (*entity.Provider, error)

	// UpdateLocation stores the caller's current location
	UpdateLocation(ctx context.Context, caller *service.CallerIdentity, location entity.GeoPoint) error
}
