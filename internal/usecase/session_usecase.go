package usecase

import (
	"context"

	"gigmarket/internal/infrastructure/firebase"
	"gigmarket/internal/session"
)

type SessionStatus struct {
	State string `json:"state"`
	Graph string `json:"graph,omitempty"`
	UID   string `json:"uid,omitempty"`
}

type SessionUseCase struct {
	verifier firebase.TokenVerifier
}

func NewSessionUseCase(verifier firebase.TokenVerifier) *SessionUseCase {
	return &SessionUseCase{
		verifier: verifier,
	}
}

// Resolve runs a session gate for one bearer token. resolved is false when
// ctx ended before the first session callback.
func (uc *SessionUseCase) Resolve(ctx context.Context, token string) (status SessionStatus, resolved bool) {
	gate := session.NewGate(firebase.NewTokenSource(ctx, uc.verifier, token))
	defer gate.Close()

	id, err := gate.Wait(ctx)
	if err != nil {
		return SessionStatus{State: session.Resolving.String()}, false
	}

	return SessionStatus{
		State: gate.State().String(),
		Graph: gate.Graph(),
		UID:   id.UID,
	}, true
}
