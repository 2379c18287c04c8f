package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gigmarket/pkg/errors"
	"gigmarket/pkg/response"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	parts := strings.Split(r.Header.Get("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		idToken := BearerToken(c.Request())
		if idToken == "" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		return m.verify(c, next, idToken)
	}
}

// AuthenticateWebSocket also accepts ?token=, since browser websocket
// clients cannot set headers.
func (m *AuthMiddleware) AuthenticateWebSocket(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		idToken := BearerToken(c.Request())
		if idToken == "" {
			idToken = c.QueryParam("token")
		}
		if idToken == "" {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		return m.verify(c, next, idToken)
	}
}

func (m *AuthMiddleware) verify(c echo.Context, next echo.HandlerFunc, idToken string) error {
	uid, err := m.verifier.VerifyToken(c.Request().Context(), idToken)
	if err != nil {
		return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
	}

	c.Set("uid", uid)
	return next(c)
}
