package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"mastercraft/config"
	"mastercraft/internal/domain/lifecycle"
	"mastercraft/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer runs an echo instance on http.port until fx stops it.
type EchoServer struct {
	name   string
	port   int
	h2c    *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// EchoServerOption customizes an EchoServer.
type EchoServerOption func(*EchoServer)

// WithH2C serves cleartext HTTP/2 next to HTTP/1.1.
func WithH2C() EchoServerOption {
	return func(s *EchoServer) {
		s.h2c = &http2.Server{IdleTimeout: s.echo.Server.IdleTimeout}
	}
}

// NewEchoServer wraps e and registers its graceful shutdown on lc.
func NewEchoServer(lc fx.Lifecycle, name string, cfg *config.Config, logger *slog.Logger, e *echo.Echo, opts ...EchoServerOption) *EchoServer {
	ApplyServerTimeouts(e, cfg)

	s := &EchoServer{
		name:   name,
		port:   cfg.HTTP.Port,
		echo:   e,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	lc.Append(fx.StopHook(s.stop))

	return s
}

// ApplyServerTimeouts copies http.timeouts onto the underlying http.Server.
func ApplyServerTimeouts(e *echo.Echo, cfg *config.Config) {
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
}

func (s *EchoServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting HTTP server",
		slog.String("server", s.name),
		slog.String("host_port", hostPort),
		slog.Bool("h2c", s.h2c != nil),
	)

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(hostPort, s.h2c)
	} else {
		err = s.echo.Start(hostPort)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *EchoServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server", slog.String("server", s.name))

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
