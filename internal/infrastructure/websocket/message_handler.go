package websocket

import (
	"encoding/json"
	"time"

	"gigmarket/internal/domain/entity"
	"gigmarket/pkg/logger"
)

const (
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeNotification = "notification"
	MessageTypeError        = "error"
)

type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// PushDecision forwards a stored decision to the recipient's live connections.
// Having no live connection is not an error.
func (m *Manager) PushDecision(msg *entity.NotificationMessage) error {
	payload, err := json.Marshal(WSMessage{
		Type:      MessageTypeNotification,
		Data:      msg,
		Timestamp: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	n := m.SendToUser(msg.To, payload)
	logger.Debug("WebSocket: notification %s pushed to %d connection(s) of %s", msg.ID, n, msg.To)
	return nil
}

// HandleClientMessage processes incoming WebSocket messages. The feed is
// push-only; clients may only ping.
func (m *Manager) HandleClientMessage(client *Client, messageBytes []byte) {
	var wsMessage WSMessage
	if err := json.Unmarshal(messageBytes, &wsMessage); err != nil {
		m.sendToClient(client, errorMessage("Invalid message format"))
		return
	}

	switch wsMessage.Type {
	case MessageTypePing:
		m.sendToClient(client, WSMessage{
			Type:      MessageTypePong,
			Data:      map[string]string{"status": "alive"},
			Timestamp: time.Now().Format(time.RFC3339),
		})
	default:
		logger.Debug("WebSocket: unknown message type '%s' from %s", wsMessage.Type, client.UserID)
		m.sendToClient(client, errorMessage("Unknown message type"))
	}
}

func errorMessage(text string) WSMessage {
	return WSMessage{
		Type:      MessageTypeError,
		Data:      map[string]string{"error": text},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func (m *Manager) sendToClient(client *Client, message WSMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		logger.Error("WebSocket: failed to marshal message for %s: %v", client.UserID, err)
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.clients[client.UserID][client]; !ok {
		return
	}
	select {
	case client.Send <- payload:
	default:
		m.removeLocked(client)
	}
}
