// Package handler contains the dispatch worker's Pub/Sub push handler.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"mastercraft/config"
	deliverycontext "mastercraft/internal/delivery/context"
	"mastercraft/internal/domain/constants"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/domain/service"
	"mastercraft/internal/errors"
	"mastercraft/internal/infra/pubsub"
	"mastercraft/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// isPermanent reports errors that redelivering the same event cannot fix.
func isPermanent(err error) bool {
	return errors.IsAny(err,
		domainerrors.ErrValidationFailed,
		domainerrors.ErrInvalidArgument,
		domainerrors.ErrProviderNotFound,
	)
}

// tokenValidator validates a Google-signed OIDC token for audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers request events pushed by Pub/Sub to the dispatch use cases
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	validateToken  tokenValidator
	logger         *slog.Logger
	matchingUC     usecase.MatchingUsecase
	lifecycleUC    usecase.LifecycleUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	MatchingUC  usecase.MatchingUsecase
	LifecycleUC usecase.LifecycleUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google pushes carry an OIDC token outside local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		matchingUC:     params.MatchingUC,
		lifecycleUC:    params.LifecycleUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// 2xx acknowledges the message; 503 asks Pub/Sub to redeliver it.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeEvent()
	if err != nil {
		h.logger.ErrorContext(ctx, "[Worker] Malformed push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.InfoContext(ctx, "[Worker] Processing request event",
		slog.String("kind", string(event.Kind)),
		slog.String("service_request_id", event.RequestID),
	)

	result, err := h.processEvent(ctx, event)
	if err != nil {
		reqLogger.ErrorContext(ctx, "[Worker] Failed to process request event",
			slog.String("kind", string(event.Kind)),
			slog.String("service_request_id", event.RequestID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Non-retryable errors are acknowledged to prevent infinite redelivery
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.InfoContext(ctx, "[Worker] Request event processed",
		slog.String("kind", string(event.Kind)),
		slog.String("service_request_id", event.RequestID),
		slog.Int("notifications_created", result.NotificationsCreated),
		slog.Int("providers_updated", result.ProvidersUpdated),
		slog.Bool("duplicate", result.Duplicate),
	)

	return c.JSON(http.StatusOK, result)
}

// processEvent routes the event to the hook registered for its kind
func (h *PushHandler) processEvent(ctx context.Context, event *service.RequestEvent) (*usecase.DispatchResult, error) {
	var (
		result *usecase.DispatchResult
		err    error
	)

	switch event.Kind {
	case service.RequestEventCreated:
		result, err = h.matchingUC.OnRequestCreated(ctx, event.After)
	case service.RequestEventStatusChanged:
		result, err = h.lifecycleUC.OnStatusChange(ctx, event.Before, event.After)
	default:
		return nil, errors.Errorf("unknown event kind %q", event.Kind)
	}

	if err != nil {
		if isPermanent(err) {
			return nil, err
		}

		return nil, newRetryableError(err)
	}

	return result, nil
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.RequestEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrTraceID]; requestID != "" {
		return requestID
	}

	if event.TraceID != "" {
		return event.TraceID
	}

	// From RequestIDMiddleware via X-Request-Id header
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected
	audience := h.pushAudience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
