package usecase

import (
	"context"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/service"
)

// CreateRequestInput represents a customer's new service request
type CreateRequestInput struct {
	ServiceType string           `json:"serviceType" validate:"required,max=64"`
	Description string           `json:"description" validate:"max=2000"`
	Location    *entity.GeoPoint `json:"location,omitempty"`
}

// UpdateRequestStatusInput represents a status transition of a service request
type UpdateRequestStatusInput struct {
	Status entity.RequestStatus `json:"status" validate:"required,oneof=assigned in_progress completed cancelled"`
	// ProviderID is the provider to assign; providers assigning themselves may omit it
	ProviderID string `json:"providerId,omitempty"`
}

// RequestUsecase manages service requests on behalf of customers and providers
type RequestUsecase interface {
	// CreateRequest creates a pending request for the caller and publishes its creation event
	CreateRequest(ctx context.Context, caller *service.CallerIdentity, input *CreateRequestInput) (*entity.ServiceRequest, error)

	// GetRequest returns a request visible to the caller
	GetRequest(ctx context.Context, caller *service.CallerIdentity, requestID string) (*entity.ServiceRequest, error)

	// UpdateRequestStatus validates and persists a transition and publishes the before/after snapshots
	UpdateRequestStatus(ctx context.Context, caller *service.CallerIdentity, requestID string, input *UpdateRequestStatusInput) (*entity.ServiceRequest, error)
}
