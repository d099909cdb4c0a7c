// Package worker serves the dispatch worker's Pub/Sub push endpoint.
package worker

import (
	"log/slog"

	"mastercraft/config"
	"mastercraft/internal/delivery"
	"mastercraft/internal/delivery/middleware"
	"mastercraft/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the worker HTTP server. The worker usually runs next to
// the API, so deployments override its port with HTTP_PORT.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger, params.PushHandler)

	return delivery.NewEchoServer(params.Lc, "worker", params.Cfg, params.Logger, e), nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	delivery.ApplyServerTimeouts(e, cfg)

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/health", delivery.HealthCheck)
	// Google Pub/Sub push and the local publisher post the same envelope here.
	e.POST("/push", push.HandlePush)

	return e
}
