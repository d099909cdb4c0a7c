// Package api serves the public HTTP API.
package api

import (
	"log/slog"

	"mastercraft/config"
	"mastercraft/internal/delivery"
	apimiddleware "mastercraft/internal/delivery/api/middleware"
	"mastercraft/internal/delivery/api/router"
	"mastercraft/internal/delivery/api/validator"
	"mastercraft/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer creates the API server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := NewEcho(params.Cfg, params.Logger, params.RouterParams)

	return delivery.NewEchoServer(params.Lc, "api", params.Cfg, params.Logger, e, delivery.WithH2C()), nil
}

// NewEcho builds the echo instance with the middleware chain and routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	e := echo.New()
	delivery.ApplyServerTimeouts(e, cfg)

	// Recover first so panics in later middleware are caught; the request ID
	// has to exist before the logger runs.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(routerParams).RegisterRoutes(e)

	return e
}
