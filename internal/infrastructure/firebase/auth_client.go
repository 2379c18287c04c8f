package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"gigmarket/internal/domain/entity"
)

type FirebaseAuthClient struct {
	client  *auth.Client
	toolkit *IdentityToolkit
}

func NewFirebaseAuthClient(client *auth.Client, toolkit *IdentityToolkit) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client:  client,
		toolkit: toolkit,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	return f.toolkit.SignInWithPassword(ctx, email, password)
}

// RevokeSessions invalidates every refresh token issued to uid.
func (f *FirebaseAuthClient) RevokeSessions(ctx context.Context, uid string) error {
	return f.client.RevokeRefreshTokens(ctx, uid)
}
