package router

import (
	"github.com/labstack/echo/v4"

	"gigmarket/internal/adapter/api/handler"
)

// SetupSessionRouter is public: an absent or bad token resolves to the
// unauthenticated graph instead of failing.
func SetupSessionRouter(e *echo.Echo, sessionHandler *handler.SessionHandler) {
	e.GET("/v1/session", sessionHandler.GetSession)
}
