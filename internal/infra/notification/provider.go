package notification

import (
	"context"
	"log/slog"

	"mastercraft/config"
	"mastercraft/internal/domain/entity"
	"mastercraft/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// noopPushService drops notifications when push delivery is disabled
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendNotifications(ctx context.Context, notifications []*entity.Notification) (int, int, error) {
	s.logger.DebugContext(ctx, "[NoopPush] Push delivery disabled, skipping",
		slog.Int("count", len(notifications)),
	)

	return 0, 0, nil
}

// PushParams holds dependencies for PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewPushService creates the FCM push service, or a no-op one when push is disabled
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Push
	if cfg == nil || !cfg.Enabled || params.App == nil {
		params.Logger.Info("Push delivery disabled, using no-op push service")

		return &noopPushService{logger: params.Logger}, nil
	}

	params.Logger.Info("Using FCM topic push", slog.String("topic_prefix", cfg.TopicPrefix))

	return NewFirebaseService(params.Ctx, params.App, cfg.TopicPrefix, params.Logger)
}

// Module provides the push notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushService),
)
