package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type requestService struct {
	requestRepo repository.RequestRepository
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	TxManager   repository.TransactionManager
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewRequestService creates a new service request use case instance
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		txManager:   params.TxManager,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// CreateRequest stores a pending request owned by the caller and publishes its creation event.
func (s *requestService) CreateRequest(ctx context.Context, caller *service.CallerIdentity, input *usecase.CreateRequestInput) (*entity.ServiceRequest, error) {
	if caller == nil || caller.UID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !caller.HasRole(entity.RoleCustomer) && !caller.HasRole(entity.RoleAdmin) {
		return nil, domainerrors.ErrForbidden.WithDetails("customer role required")
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request is required")
	}

	serviceType := normalizeServiceType(input.ServiceType)
	if serviceType == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("serviceType is required")
	}
	if input.Location != nil && !input.Location.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("location is out of range")
	}

	request := &entity.ServiceRequest{
		CustomerID:  caller.UID,
		ServiceType: serviceType,
		Description: strings.TrimSpace(input.Description),
		Location:    input.Location,
		Status:      entity.RequestStatusPending,
	}
	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create service request")
	}

	s.logger.InfoContext(ctx, "Service request created",
		slog.String("requestID", request.ID),
		slog.String("customerID", request.CustomerID),
		slog.String("serviceType", request.ServiceType),
	)

	s.publish(ctx, &service.RequestEvent{
		Kind:      service.RequestEventCreated,
		RequestID: request.ID,
		After:     request.Clone(),
	})

	return request, nil
}

// GetRequest returns a request the caller takes part in. Pending requests are
// visible to every provider so notified providers can inspect them.
func (s *requestService) GetRequest(ctx context.Context, caller *service.CallerIdentity, requestID string) (*entity.ServiceRequest, error) {
	if caller == nil || caller.UID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.WithStack(domainerrors.ErrRequestNotFound)
		}

		return nil, errors.Wrap(err, "failed to find service request")
	}

	visible := caller.HasRole(entity.RoleAdmin) ||
		request.CustomerID == caller.UID ||
		request.AssignedProvider == caller.UID ||
		(request.Status == entity.RequestStatusPending && caller.HasRole(entity.RoleProvider))
	if !visible {
		return nil, errors.WithStack(domainerrors.ErrRequestNotFound)
	}

	return request, nil
}

// UpdateRequestStatus moves a request along the lifecycle and publishes the
// before/after snapshots for the dispatch worker.
func (s *requestService) UpdateRequestStatus(ctx context.Context, caller *service.CallerIdentity, requestID string, input *usecase.UpdateRequestStatusInput) (*entity.ServiceRequest, error) {
	if caller == nil || caller.UID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input == nil || !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a valid status is required")
	}

	var before, after *entity.ServiceRequest

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()
		providerRepo := repoFactory.NewProviderRepository()

		current, err := requestRepo.FindRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.WithStack(domainerrors.ErrRequestNotFound)
			}

			return errors.Wrap(err, "failed to find service request")
		}

		if !current.Status.CanTransition(input.Status) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				"cannot move from " + current.Status.String() + " to " + input.Status.String())
		}

		next := current.Clone()
		next.Status = input.Status

		switch input.Status {
		case entity.RequestStatusAssigned:
			providerID, err := s.assignee(caller, input.ProviderID)
			if err != nil {
				return err
			}

			provider, err := providerRepo.FindProviderByID(ctx, providerID)
			if err != nil {
				if errors.Is(err, repository.ErrProviderNotFound) {
					return errors.WithStack(domainerrors.ErrProviderNotFound)
				}

				return errors.Wrap(err, "failed to find provider")
			}
			if !provider.OffersService(current.ServiceType) {
				return domainerrors.ErrInvalidTransition.WithDetails("provider does not offer " + current.ServiceType)
			}
			if !provider.IsAvailable() {
				return domainerrors.ErrInvalidTransition.WithDetails("provider is not available")
			}

			assignedAt := s.now()
			next.AssignedProvider = providerID
			next.AssignedAt = &assignedAt

		case entity.RequestStatusInProgress, entity.RequestStatusCompleted:
			if !caller.HasRole(entity.RoleAdmin) && caller.UID != current.AssignedProvider {
				return domainerrors.ErrForbidden.WithDetails("only the assigned provider can update this request")
			}

		case entity.RequestStatusCancelled:
			if !caller.HasRole(entity.RoleAdmin) && caller.UID != current.CustomerID && caller.UID != current.AssignedProvider {
				return domainerrors.ErrForbidden.WithDetails("only the customer or the assigned provider can cancel this request")
			}

		case entity.RequestStatusPending:
			return domainerrors.ErrInvalidTransition
		}

		if err := requestRepo.UpdateRequestStatus(ctx, next); err != nil {
			return errors.Wrap(err, "failed to update service request")
		}

		before, after = current, next

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update request status")
	}

	s.logger.InfoContext(ctx, "Service request status changed",
		slog.String("requestID", after.ID),
		slog.String("from", before.Status.String()),
		slog.String("to", after.Status.String()),
		slog.String("uid", caller.UID),
	)

	s.publish(ctx, &service.RequestEvent{
		Kind:      service.RequestEventStatusChanged,
		RequestID: after.ID,
		Before:    before.Clone(),
		After:     after.Clone(),
	})

	return after, nil
}

// assignee resolves which provider is assigned. Providers may only assign themselves.
func (s *requestService) assignee(caller *service.CallerIdentity, requested string) (string, error) {
	switch {
	case caller.HasRole(entity.RoleAdmin):
		if requested == "" {
			return "", domainerrors.ErrValidationFailed.WithDetails("providerId is required")
		}

		return requested, nil
	case caller.HasRole(entity.RoleProvider):
		if requested != "" && requested != caller.UID {
			return "", domainerrors.ErrForbidden.WithDetails("providers can only assign themselves")
		}

		return caller.UID, nil
	default:
		return "", domainerrors.ErrForbidden.WithDetails("provider role required")
	}
}

// publish hands the event to the queue once the change is committed. A failed
// publish is logged; the stored request stays authoritative.
// TODO: move publishing into a transactional outbox so a crash between commit and publish cannot drop the event.
func (s *requestService) publish(ctx context.Context, event *service.RequestEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishRequestEvent(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish request event",
			slog.String("kind", string(event.Kind)),
			slog.String("requestID", event.RequestID),
			slog.Any("error", err),
		)
	}
}
