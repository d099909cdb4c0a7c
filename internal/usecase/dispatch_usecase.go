package usecase

import (
	"context"

	"mastercraft/internal/domain/entity"
)

// DispatchResult summarizes the effects committed for one event
type DispatchResult struct {
	NotificationsCreated int  `json:"notifications_created"`
	ProvidersUpdated     int  `json:"providers_updated"`
	Duplicate            bool `json:"duplicate"` // The event was already applied; nothing was written
}

// MatchingUsecase reacts to newly created service requests
type MatchingUsecase interface {
	// OnRequestCreated notifies every eligible provider of the request in one atomic batch
	OnRequestCreated(ctx context.Context, request *entity.ServiceRequest) (*DispatchResult, error)
}

// LifecycleUsecase reacts to status transitions of service requests
type LifecycleUsecase interface {
	// OnStatusChange applies the side effects of moving a request from before to after atomically
	OnStatusChange(ctx context.Context, before, after *entity.ServiceRequest) (*DispatchResult, error)
}
