package router

import (
	"github.com/labstack/echo/v4"

	"gigmarket/internal/adapter/api/handler"
	"gigmarket/internal/adapter/api/middleware"
	"gigmarket/internal/infrastructure/ratelimit"
)

// Decisions are rate limited inside NotificationUseCase, not here.
func SetupGigRouter(e *echo.Echo, gigHandler *handler.GigHandler, notificationHandler *handler.NotificationHandler, opts Options) {
	gigs := e.Group("/v1/gigs", opts.Auth.Authenticate)

	gigs.GET("/search", gigHandler.Search, middleware.UserActionLimit(opts.Limiter, ratelimit.ActionSearch))
	gigs.GET("/:id", gigHandler.GetGig)
	gigs.POST("/:id/decision", notificationHandler.Decide)
}
