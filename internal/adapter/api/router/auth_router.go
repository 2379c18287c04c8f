package router

import (
	"github.com/labstack/echo/v4"

	"gigmarket/internal/adapter/api/handler"
	"gigmarket/internal/adapter/api/middleware"
)

// SetupAuthRouter mounts the credential endpoints behind a per-IP limit.
func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler, opts Options) {
	auth := e.Group("/v1/auth")
	if opts.AuthRPS > 0 {
		auth.Use(middleware.IPRateLimit(opts.AuthRPS, opts.AuthBurst))
	}

	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, opts.Auth.Authenticate)
}
