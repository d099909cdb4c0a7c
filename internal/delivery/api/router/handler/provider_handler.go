package handler

import (
	"log/slog"

	"mastercraft/internal/delivery/api/response"
	deliverycontext "mastercraft/internal/delivery/context"
	"mastercraft/internal/domain/dispatch"
	"mastercraft/internal/domain/entity"
	domainerrors "mastercraft/internal/domain/errors"
	"mastercraft/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const formatGeoJSON = "geojson"

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	SearchUC   usecase.ProviderSearchUsecase
	ProviderUC usecase.ProviderUsecase
	Logger     *slog.Logger
}

// ProviderHandler serves the nearby search and the provider self-service endpoints
type ProviderHandler struct {
	searchUC   usecase.ProviderSearchUsecase
	providerUC usecase.ProviderUsecase
	logger     *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{
		searchUC:   params.SearchUC,
		providerUC: params.ProviderUC,
		logger:     params.Logger,
	}
}

// NearbyProvider is a provider in the nearby search result
type NearbyProvider struct {
	*entity.Provider
	Distance float64 `json:"distance"` // Kilometers, one decimal
}

// NearbyProvidersResponse is the result of the nearby search
type NearbyProvidersResponse struct {
	Providers []NearbyProvider `json:"providers"`
}

// UpdateLocationRequest represents the request body for a location update
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// FindNearby handles POST /providers/nearby
func (h *ProviderHandler) FindNearby(c echo.Context) error {
	var input usecase.NearbyProvidersInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails("request body must be a JSON object")
	}

	nearby, err := h.searchUC.FindNearbyProviders(c.Request().Context(), deliverycontext.GetCaller(c), &input)
	if err != nil {
		return err
	}

	if c.QueryParam("format") == formatGeoJSON {
		return response.OK(c, nearbyFeatureCollection(nearby))
	}

	return response.OK(c, toNearbyProvidersResponse(nearby))
}

// GetMe handles GET /providers/me
func (h *ProviderHandler) GetMe(c echo.Context) error {
	provider, err := h.providerUC.GetProvider(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return err
	}

	return response.OK(c, provider)
}

// UpsertMe handles PUT /providers/me
func (h *ProviderHandler) UpsertMe(c echo.Context) error {
	var input usecase.UpsertProviderInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid provider input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	provider, err := h.providerUC.UpsertProvider(c.Request().Context(), deliverycontext.GetCaller(c), &input)
	if err != nil {
		return err
	}

	return response.OK(c, provider)
}

// UpdateMyLocation handles PUT /providers/me/location
func (h *ProviderHandler) UpdateMyLocation(c echo.Context) error {
	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location := entity.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := h.providerUC.UpdateLocation(c.Request().Context(), deliverycontext.GetCaller(c), location); err != nil {
		return err
	}

	return response.OK(c, location)
}

func toNearbyProvidersResponse(nearby []dispatch.NearbyProvider) NearbyProvidersResponse {
	providers := make([]NearbyProvider, 0, len(nearby))
	for _, n := range nearby {
		providers = append(providers, NearbyProvider{Provider: n.Provider, Distance: n.DistanceKm})
	}

	return NearbyProvidersResponse{Providers: providers}
}
