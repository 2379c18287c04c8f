package handler

import (
	"github.com/labstack/echo/v4"

	"gigmarket/pkg/errors"
	"gigmarket/pkg/response"
)

// Handlers groups every HTTP handler the routers mount.
type Handlers struct {
	Auth         *AuthHandler
	Session      *SessionHandler
	Profile      *ProfileHandler
	Gig          *GigHandler
	Notification *NotificationHandler
	Preference   *PreferenceHandler
	WebSocket    *WebSocketHandler
	Health       *HealthHandler
}

func currentUID(c echo.Context) (string, error) {
	uid, ok := c.Get("uid").(string)
	if !ok || uid == "" {
		return "", errors.Unauthorized("Authentication required", nil)
	}
	return uid, nil
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

func fail(c echo.Context, err error) error {
	return response.Error(c, err)
}
