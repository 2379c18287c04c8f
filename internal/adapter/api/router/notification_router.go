package router

import (
	"github.com/labstack/echo/v4"

	"gigmarket/internal/adapter/api/handler"
	"gigmarket/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, notificationHandler *handler.NotificationHandler, wsHandler *handler.WebSocketHandler, auth *middleware.AuthMiddleware) {
	e.GET("/v1/notifications", notificationHandler.List, auth.Authenticate)

	// Browsers cannot set headers on a WebSocket handshake, so ?token= is accepted too.
	e.GET("/v1/notifications/ws", wsHandler.Subscribe, auth.AuthenticateWebSocket)
}
