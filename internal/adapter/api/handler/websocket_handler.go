package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "gigmarket/internal/infrastructure/websocket"
	"gigmarket/pkg/errors"
	"gigmarket/pkg/logger"
)

type WebSocketHandler struct {
	wsManager *ws.Manager
	upgrader  gorillaws.Upgrader
}

func NewWebSocketHandler(wsManager *ws.Manager, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// originChecker accepts any origin when the list is empty or contains "*".
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// Subscribe upgrades the connection and streams the caller's decision
// notifications until either side closes.
func (h *WebSocketHandler) Subscribe(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logger.Warn("WebSocket upgrade failed: uid=%s, error=%v", uid, err)
		return nil
	}

	client := ws.NewClient(uid, conn)
	select {
	case h.wsManager.Register <- client:
	case <-c.Request().Context().Done():
		conn.Close()
		return errors.ServiceUnavailable("Notification feed unavailable", c.Request().Context().Err())
	}

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
