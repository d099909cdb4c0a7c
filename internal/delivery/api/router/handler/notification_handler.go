package handler

import (
	"log/slog"

	"mastercraft/internal/delivery/api/response"
	deliverycontext "mastercraft/internal/delivery/context"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the caller's notification inbox
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications handles GET /notifications?limit=&offset=
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	var limit, offset int
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("limit and offset must be integers")
	}

	notifications, err := h.notificationUC.ListNotifications(c.Request().Context(), deliverycontext.GetCaller(c), limit, offset)
	if err != nil {
		return err
	}

	return response.OK(c, notifications)
}

// MarkRead handles POST /notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id := c.Param("id")
	if err := h.notificationUC.MarkNotificationRead(c.Request().Context(), deliverycontext.GetCaller(c), id); err != nil {
		return err
	}

	return response.OK(c, map[string]any{"id": id, "read": true})
}
