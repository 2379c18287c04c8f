package firebase

import (
	"context"

	"gigmarket/internal/session"
	"gigmarket/pkg/logger"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// TokenSource reports the session carried by one bearer token. It emits
// exactly once: the verified uid, or an anonymous identity.
type TokenSource struct {
	ctx      context.Context
	verifier TokenVerifier
	token    string
}

func NewTokenSource(ctx context.Context, verifier TokenVerifier, token string) *TokenSource {
	return &TokenSource{
		ctx:      ctx,
		verifier: verifier,
		token:    token,
	}
}

func (s *TokenSource) Subscribe(callback func(session.Identity)) func() {
	ctx, cancel := context.WithCancel(s.ctx)

	go func() {
		var id session.Identity
		if s.token != "" {
			uid, err := s.verifier.VerifyToken(ctx, s.token)
			if err != nil {
				logger.Debug("Session token rejected: %v", err)
			} else {
				id.UID = uid
			}
		}

		if ctx.Err() != nil {
			return
		}
		callback(id)
	}()

	return cancel
}
