package main

import (
	"context"
	"log/slog"
	"os"

	"mastercraft/config"
	"mastercraft/internal/delivery"
	"mastercraft/internal/delivery/worker"
	"mastercraft/internal/delivery/worker/handler"
	"mastercraft/internal/infra/firebase"
	logs "mastercraft/internal/infra/log"
	"mastercraft/internal/infra/notification"
	"mastercraft/internal/infra/persistence"
	"mastercraft/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	opts, err := appOptions(cfg)
	if err != nil {
		slog.Error("Failed to assemble application", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(opts).Run()
}

// appOptions assembles the application graph for cfg.
func appOptions(cfg *config.Config) (fx.Option, error) {
	store, err := persistence.Module(cfg.Store.Driver)
	if err != nil {
		return nil, err
	}

	return fx.Options(
		injectInfra(cfg),
		store,
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	), nil
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
		firebase.ModuleFor(cfg),
	)
}

func injectService() fx.Option {
	return fx.Options(
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatchingService,
			impl.NewLifecycleService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
