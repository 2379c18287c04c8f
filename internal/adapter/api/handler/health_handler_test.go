package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_CheckReady(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]HealthCheck
		status int
		want   map[string]string
	}{
		{
			name:   "no checks",
			status: http.StatusOK,
			want:   map[string]string{},
		},
		{
			name: "all healthy",
			checks: map[string]HealthCheck{
				"redis": func(context.Context) error { return nil },
			},
			status: http.StatusOK,
			want:   map[string]string{"redis": "ok"},
		},
		{
			name: "one failing",
			checks: map[string]HealthCheck{
				"redis":     func(context.Context) error { return nil },
				"firestore": func(context.Context) error { return stderrors.New("unreachable") },
			},
			status: http.StatusServiceUnavailable,
			want:   map[string]string{"redis": "ok", "firestore": "unreachable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			h := NewHealthHandler(tt.checks)
			e.GET("/health/ready", h.CheckReady)

			rec := serve(e, newJSONRequest(http.MethodGet, "/health/ready", ""))
			assert.Equal(t, tt.status, rec.Code)

			var body struct {
				Ready  bool              `json:"ready"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status == http.StatusOK, body.Ready)
			assert.Equal(t, tt.want, body.Checks)
		})
	}
}
