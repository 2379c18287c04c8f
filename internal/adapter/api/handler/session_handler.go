package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"gigmarket/internal/adapter/api/middleware"
	"gigmarket/internal/usecase"
	"gigmarket/pkg/response"
)

const defaultSessionWait = 5 * time.Second

type SessionHandler struct {
	sessionUseCase *usecase.SessionUseCase
	wait           time.Duration
}

func NewSessionHandler(sessionUseCase *usecase.SessionUseCase) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		wait:           defaultSessionWait,
	}
}

// GetSession answers 202 with state "resolving" when the session could not
// be settled in time; the client polls again.
func (h *SessionHandler) GetSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.wait)
	defer cancel()

	status, resolved := h.sessionUseCase.Resolve(ctx, middleware.BearerToken(c.Request()))
	if !resolved {
		return response.Accepted(c, status)
	}
	return response.Success(c, status)
}
