package router

import (
	"github.com/labstack/echo/v4"

	"gigmarket/internal/adapter/api/handler"
	"gigmarket/internal/adapter/api/middleware"
	"gigmarket/internal/infrastructure/ratelimit"
)

func SetupProfileRouter(e *echo.Echo, profileHandler *handler.ProfileHandler, opts Options) {
	v1 := e.Group("/v1", opts.Auth.Authenticate)

	v1.GET("/profile", profileHandler.GetProfile)
	v1.PUT("/profile", profileHandler.SaveProfile)
	v1.DELETE("/profile", profileHandler.DeleteProfile)
	v1.POST("/location/resolve", profileHandler.ResolveLocation,
		middleware.UserActionLimit(opts.Limiter, ratelimit.ActionResolveLocation))
}
