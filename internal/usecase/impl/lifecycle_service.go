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

type lifecycleService struct {
	txManager repository.TransactionManager
	push      service.PushService
	logger    *slog.Logger
}

// NewLifecycleService creates the service applying request status transitions
func NewLifecycleService(params DispatchServiceParams) usecase.LifecycleUsecase {
	return &lifecycleService{
		txManager: params.TxManager,
		push:      params.Push,
		logger:    params.Logger,
	}
}

// OnStatusChange commits the transition's notifications, provider updates and
// its ledger entry as one unit. The ledger is keyed by request and target
// status, so a redelivered transition never increments completedJobs twice.
func (s *lifecycleService) OnStatusChange(ctx context.Context, before, after *entity.ServiceRequest) (*usecase.DispatchResult, error) {
	if before == nil || after == nil || after.ID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("before and after snapshots with a request id are required")
	}

	plan := dispatch.PlanStatusChange(before, after)
	if plan.IsEmpty() {
		return &usecase.DispatchResult{}, nil
	}

	var (
		result  *usecase.DispatchResult
		created []*entity.Notification
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		result, created = &usecase.DispatchResult{}, nil
		providerRepo := repoFactory.NewProviderRepository()

		// Reads first: every provider touched by the plan must exist. A missing
		// provider will not appear on redelivery, so it is reported as permanent.
		for _, update := range plan.ProviderUpdates {
			if _, err := providerRepo.FindProviderByID(ctx, update.ProviderID); err != nil {
				if errors.Is(err, repository.ErrProviderNotFound) {
					return errors.WithStack(domainerrors.ErrProviderNotFound.WithDetails(update.ProviderID))
				}

				return errors.Wrapf(err, "failed to load provider %s", update.ProviderID)
			}
		}

		applied, err := repoFactory.NewEventLedgerRepository().RecordEvent(ctx, entity.AppliedEvent{
			Handler:      entity.HandlerStatusChanged,
			RequestID:    after.ID,
			TargetStatus: after.Status,
		})
		if err != nil {
			return errors.Wrap(err, "failed to record applied event")
		}
		if !applied {
			result = duplicateResult()

			return nil
		}

		notifications := plan.Notifications
		if len(notifications) > 0 {
			if err := repoFactory.NewNotificationRepository().BatchCreateNotifications(ctx, notifications); err != nil {
				return errors.Wrap(err, "failed to create transition notifications")
			}
		}

		for _, update := range plan.ProviderUpdates {
			if err := providerRepo.ApplyProviderUpdate(ctx, update); err != nil {
				return errors.Wrapf(err, "failed to update provider %s", update.ProviderID)
			}
		}

		result.NotificationsCreated = len(notifications)
		result.ProvidersUpdated = len(plan.ProviderUpdates)
		created = notifications

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply transition of request %s", after.ID)
	}

	s.logger.InfoContext(ctx, "Request transition applied",
		slog.String("requestID", after.ID),
		slog.String("from", before.Status.String()),
		slog.String("to", after.Status.String()),
		slog.Int("notifications", result.NotificationsCreated),
		slog.Int("providerUpdates", result.ProvidersUpdated),
		slog.Bool("duplicate", result.Duplicate),
	)

	pushAfterCommit(ctx, s.push, s.logger, created)

	return result, nil
}
