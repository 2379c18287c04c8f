package router

import (
	"github.com/labstack/echo/v4"

	"gigmarket/internal/adapter/api/handler"
	"gigmarket/internal/adapter/api/middleware"
)

func SetupPreferenceRouter(e *echo.Echo, preferenceHandler *handler.PreferenceHandler, auth *middleware.AuthMiddleware) {
	prefs := e.Group("/v1/preferences", auth.Authenticate)

	prefs.GET("", preferenceHandler.GetPreferences)
	prefs.PUT("", preferenceHandler.UpdatePreferences)
	prefs.GET("/theme", preferenceHandler.GetTheme)
	prefs.POST("/haptics", preferenceHandler.Haptics)
}
