// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/repository"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/usecase"

	"go.uber.org/fx"
)

// DispatchServiceParams holds dependencies shared by the matching and lifecycle services, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Push      service.PushService `optional:"true"`
	Logger    *slog.Logger
}

// pushAfterCommit delivers committed notifications to devices. Push is best
// effort: failures are logged and never undo or fail the committed event.
func pushAfterCommit(ctx context.Context, push service.PushService, logger *slog.Logger, notifications []*entity.Notification) {
	if push == nil || len(notifications) == 0 {
		return
	}

	sent, failed, err := push.SendNotifications(ctx, notifications)
	if err != nil {
		logger.WarnContext(ctx, "Push delivery failed", slog.Any("error", err), slog.Int("notifications", len(notifications)))

		return
	}
	if failed > 0 {
		logger.InfoContext(ctx, "Push delivery partially failed", slog.Int("sent", sent), slog.Int("failed", failed))
	}
}

func duplicateResult() *usecase.DispatchResult {
	return &usecase.DispatchResult{Duplicate: true}
}
