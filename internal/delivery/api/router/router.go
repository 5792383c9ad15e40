// Package router wires handlers to the API routes.
package router

import (
	"evacuation/internal/delivery/api/middleware"
	"evacuation/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EvacuationHandler   *handler.EvacuationHandler
	NotificationHandler *handler.NotificationHandler
	PreferenceHandler   *handler.PreferenceHandler
	PresenceHandler     *handler.PresenceHandler
	PrincipalMiddleware *middleware.PrincipalMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	evacuationHandler   *handler.EvacuationHandler
	notificationHandler *handler.NotificationHandler
	preferenceHandler   *handler.PreferenceHandler
	presenceHandler     *handler.PresenceHandler
	principalMiddleware *middleware.PrincipalMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		evacuationHandler:   params.EvacuationHandler,
		notificationHandler: params.NotificationHandler,
		preferenceHandler:   params.PreferenceHandler,
		presenceHandler:     params.PresenceHandler,
		principalMiddleware: params.PrincipalMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.principalMiddleware.Resolve)

	evacuationsGroup := apiV1.Group("/evacuations")
	{
		evacuationsGroup.POST("/declare", r.evacuationHandler.Declare)
		evacuationsGroup.POST("", r.evacuationHandler.Create)
		evacuationsGroup.GET("", r.evacuationHandler.List)
		evacuationsGroup.GET("/:id", r.evacuationHandler.Get)
		evacuationsGroup.PATCH("/:id", r.evacuationHandler.Update)
		evacuationsGroup.DELETE("/:id", r.evacuationHandler.Delete)
		evacuationsGroup.POST("/:id/dispatch", r.evacuationHandler.Dispatch)
		evacuationsGroup.GET("/:id/recipients", r.evacuationHandler.Recipients)
	}

	apiV1.GET("/presence", r.presenceHandler.Preview)

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListAll)
		notificationsGroup.POST("", r.notificationHandler.CreateDirect)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	travelersGroup := apiV1.Group("/travelers/:pesel")
	{
		travelersGroup.GET("/notifications", r.notificationHandler.ListForTraveler)
		travelersGroup.GET("/preferences", r.preferenceHandler.Get)
		travelersGroup.PUT("/preferences", r.preferenceHandler.Set)
	}

	meGroup := apiV1.Group("/me")
	meGroup.Use(r.principalMiddleware.RequireTraveler)
	{
		meGroup.GET("/notifications", r.notificationHandler.ListMine)
	}
}
