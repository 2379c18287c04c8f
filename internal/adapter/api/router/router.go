package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"gigmarket/internal/adapter/api/handler"
	"gigmarket/internal/adapter/api/middleware"
)

// Options carries the middleware shared between route groups.
type Options struct {
	Auth         *middleware.AuthMiddleware
	Limiter      middleware.ActionLimiter
	AuthRPS      float64
	AuthBurst    int
	MetricsStore prometheus.Gatherer
}

func Setup(e *echo.Echo, h *handler.Handlers, opts Options) {
	SetupHealthRouter(e, h.Health, opts.MetricsStore)
	SetupAuthRouter(e, h.Auth, opts)
	SetupSessionRouter(e, h.Session)
	SetupProfileRouter(e, h.Profile, opts)
	SetupGigRouter(e, h.Gig, h.Notification, opts)
	SetupNotificationRouter(e, h.Notification, h.WebSocket, opts.Auth)
	SetupPreferenceRouter(e, h.Preference, opts.Auth)
}
