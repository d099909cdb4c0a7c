package impl

import (
	"context"
	"log/slog"

	"mastercraft/internal/domain/dispatch"
	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/usecase"

	"github.com/pkg/errors"
)

type matchingService struct {
	txManager repository.TransactionManager
	push      service.PushService
	logger    *slog.Logger
}

// NewMatchingService creates the service that fans new requests out to eligible providers
func NewMatchingService(params DispatchServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		txManager: params.TxManager,
		push:      params.Push,
		logger:    params.Logger,
	}
}

// OnRequestCreated notifies every available provider offering the request's service.
// The notifications and the ledger entry for the request commit together, so a
// redelivered creation event writes nothing.
func (s *matchingService) OnRequestCreated(ctx context.Context, request *entity.ServiceRequest) (*usecase.DispatchResult, error) {
	if request == nil || request.ID == "" || request.ServiceType == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("request id and service type are required")
	}

	var (
		result  *usecase.DispatchResult
		created []*entity.Notification
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		result, created = &usecase.DispatchResult{}, nil

		candidates, err := repoFactory.NewProviderRepository().FindAvailableProvidersByService(ctx, request.ServiceType)
		if err != nil {
			return errors.Wrap(err, "failed to find available providers")
		}

		notifications := dispatch.PlanNewRequestNotifications(request, candidates)
		if len(notifications) == 0 {
			return nil
		}

		applied, err := repoFactory.NewEventLedgerRepository().RecordEvent(ctx, entity.AppliedEvent{
			Handler:   entity.HandlerRequestCreated,
			RequestID: request.ID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to record applied event")
		}
		if !applied {
			result = duplicateResult()

			return nil
		}

		if err := repoFactory.NewNotificationRepository().BatchCreateNotifications(ctx, notifications); err != nil {
			return errors.Wrap(err, "failed to create provider notifications")
		}

		result.NotificationsCreated = len(notifications)
		created = notifications

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to match request %s", request.ID)
	}

	s.logger.InfoContext(ctx, "Request matched",
		slog.String("requestID", request.ID),
		slog.String("serviceType", request.ServiceType),
		slog.Int("notifications", result.NotificationsCreated),
		slog.Bool("duplicate", result.Duplicate),
	)

	pushAfterCommit(ctx, s.push, s.logger, created)

	return result, nil
}
