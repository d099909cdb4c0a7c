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

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler serves service request intake and status changes
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var input usecase.CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), deliverycontext.GetCaller(c), &input)
	if err != nil {
		return err
	}

	return response.Created(c, request)
}

// GetRequest handles GET /requests/:id
func (h *RequestHandler) GetRequest(c echo.Context) error {
	request, err := h.requestUC.GetRequest(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, request)
}

// UpdateStatus handles PATCH /requests/:id/status
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var input usecase.UpdateRequestStatusInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	request, err := h.requestUC.UpdateRequestStatus(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), &input)
	if err != nil {
		return err
	}

	return response.OK(c, request)
}
