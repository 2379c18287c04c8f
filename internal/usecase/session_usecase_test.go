package usecase

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type verifierFunc func(ctx context.Context, token string) (string, error)

func (f verifierFunc) VerifyToken(ctx context.Context, token string) (string, error) {
	return f(ctx, token)
}

func TestSessionUseCase_Resolve(t *testing.T) {
	verifier := verifierFunc(func(ctx context.Context, token string) (string, error) {
		if token == "good" {
			return "u1", nil
		}
		return "", stderrors.New("invalid token")
	})
	uc := NewSessionUseCase(verifier)

	tests := []struct {
		name      string
		token     string
		wantGraph string
		wantUID   string
	}{
		{"authenticated", "good", "authenticated", "u1"},
		{"invalid token", "bad", "unauthenticated", ""},
		{"no token", "", "unauthenticated", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resolved := uc.Resolve(context.Background(), tt.token)
			assert.True(t, resolved)
			assert.Equal(t, "resolved", status.State)
			assert.Equal(t, tt.wantGraph, status.Graph)
			assert.Equal(t, tt.wantUID, status.UID)
		})
	}
}

func TestSessionUseCase_ContextEndsFirst(t *testing.T) {
	verifier := verifierFunc(func(ctx context.Context, token string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	uc := NewSessionUseCase(verifier)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	status, resolved := uc.Resolve(ctx, "slow")
	assert.False(t, resolved)
	assert.Equal(t, SessionStatus{State: "resolving"}, status)
}
