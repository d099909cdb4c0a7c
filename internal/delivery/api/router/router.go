// Package router contains routing for the public API.
package router

import (
	"mastercraft/internal/delivery"
	"mastercraft/internal/delivery/api/router/handler"
	"mastercraft/internal/delivery/middleware"
	"mastercraft/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProviderHandler     *handler.ProviderHandler
	RequestHandler      *handler.RequestHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	providerHandler     *handler.ProviderHandler
	requestHandler      *handler.RequestHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		providerHandler:     params.ProviderHandler,
		requestHandler:      params.RequestHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", delivery.HealthCheck)

	// Every API v1 route requires a verified caller
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	providersGroup := apiV1.Group("/providers")
	{
		providersGroup.POST("/nearby", r.providerHandler.FindNearby)

		meGroup := providersGroup.Group("/me")
		meGroup.Use(r.authMiddleware.RequireRole(entity.RoleProvider))
		meGroup.GET("", r.providerHandler.GetMe)
		meGroup.PUT("", r.providerHandler.UpsertMe)
		meGroup.PUT("/location", r.providerHandler.UpdateMyLocation)
	}

	requestsGroup := apiV1.Group("/requests")
	{
		requestsGroup.POST("", r.requestHandler.CreateRequest)
		requestsGroup.GET("/:id", r.requestHandler.GetRequest)
		requestsGroup.PATCH("/:id/status", r.requestHandler.UpdateStatus)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}
}
