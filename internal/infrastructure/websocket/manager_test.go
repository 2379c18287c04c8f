package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmarket/internal/domain/entity"
)

func TestManager_PushDecisionFansOutToAllConnections(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	phone := NewClient("seller1", nil)
	tablet := NewClient("seller1", nil)
	other := NewClient("seller2", nil)
	m.Register <- phone
	m.Register <- tablet
	m.Register <- other

	require.Eventually(t, func() bool { return m.ClientCount("seller1") == 2 }, time.Second, 5*time.Millisecond)

	msg := &entity.NotificationMessage{ID: "n1", From: "buyer1", To: "seller1", Type: entity.DecisionAccepted, Timestamp: 1}
	require.NoError(t, m.PushDecision(msg))

	for _, c := range []*Client{phone, tablet} {
		select {
		case raw := <-c.Send:
			var got struct {
				Type string                     `json:"type"`
				Data entity.NotificationMessage `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, MessageTypeNotification, got.Type)
			assert.Equal(t, "buyer1", got.Data.From)
			assert.Equal(t, entity.DecisionAccepted, got.Data.Type)
		default:
			t.Fatal("expected a pushed notification")
		}
	}
	assert.Len(t, other.Send, 0)
}

func TestManager_PushWithoutSubscribers(t *testing.T) {
	m := NewManager()
	assert.NoError(t, m.PushDecision(&entity.NotificationMessage{ID: "n1", To: "nobody"}))
}

func TestManager_SlowClientIsDropped(t *testing.T) {
	m := NewManager()
	c := NewClient("u1", nil)
	m.addClient(c)

	for i := 0; i < sendBuffer; i++ {
		assert.Equal(t, 1, m.SendToUser("u1", []byte("x")))
	}
	assert.Equal(t, 0, m.SendToUser("u1", []byte("overflow")))
	assert.Equal(t, 0, m.ClientCount("u1"))
}

func TestManager_UnregisterClosesSend(t *testing.T) {
	m := NewManager()
	c := NewClient("u1", nil)
	m.addClient(c)
	m.removeClient(c)
	m.removeClient(c)

	_, ok := <-c.Send
	assert.False(t, ok)
}

func TestManager_LiveConnection(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(r.URL.Query().Get("uid"), conn)
		m.Register <- client
		go client.WritePump()
		client.ReadPump(m)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?uid=seller1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return m.ClientCount("seller1") == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": MessageTypePing}))
	var pong WSMessage
	require.NoError(t, conn.ReadJSON(&pong))
	assert.Equal(t, MessageTypePong, pong.Type)

	require.NoError(t, m.PushDecision(&entity.NotificationMessage{ID: "n2", From: "b", To: "seller1", Type: entity.DecisionRejected}))
	var pushed WSMessage
	require.NoError(t, conn.ReadJSON(&pushed))
	assert.Equal(t, MessageTypeNotification, pushed.Type)
}
