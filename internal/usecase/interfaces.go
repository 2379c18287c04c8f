package usecase

//go:generate mockgen -destination=../mocks/mock_usecase.go -package=mocks gigmarket/internal/usecase FirebaseAuthClient,Geocoder,DecisionPublisher,LiveNotifier,ActionLimiter,Vibrator

import (
	"context"
	"time"

	"gigmarket/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (*entity.AuthSession, error)
	RevokeSessions(ctx context.Context, uid string) error
}

type Geocoder interface {
	ReverseCity(ctx context.Context, lat, lon float64) (string, error)
}

type DecisionPublisher interface {
	PublishDecision(ctx context.Context, msg *entity.NotificationMessage) error
}

type LiveNotifier interface {
	PushDecision(msg *entity.NotificationMessage) error
}

type ActionLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

// Vibrator is the device haptics collaborator.
type Vibrator interface {
	Vibrate(ctx context.Context, pattern []int) error
}
