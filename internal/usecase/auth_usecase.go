package usecase

import (
	"context"
	stderrors "errors"
	"net/http"

	"firebase.google.com/go/v4/auth"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/infrastructure/firebase"
	"gigmarket/pkg/errors"
	"gigmarket/pkg/logger"
)

type AuthUseCase struct {
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*entity.AuthSession, error) {
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password)
	if err != nil {
		logger.Warn("Register failed for %s: %v", input.Email, err)
		if auth.IsEmailAlreadyExists(err) {
			return nil, errors.Conflict("EMAIL_EXISTS")
		}
		return nil, errors.New("AUTH_ERROR", err.Error(), http.StatusBadRequest, err)
	}

	sess, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, signInError(err)
	}
	if sess.UID == "" {
		sess.UID = uid
	}

	return sess, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	sess, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, signInError(err)
	}

	return sess, nil
}

// Logout revokes every refresh token of the user; outstanding ID tokens
// stay valid until they expire.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.firebaseAuth.RevokeSessions(ctx, uid); err != nil {
		return errors.ServiceUnavailable("Failed to sign out", err)
	}
	return nil
}

// signInError keeps the collaborator's own code (INVALID_PASSWORD,
// EMAIL_NOT_FOUND, ...) as the user-visible message.
func signInError(err error) error {
	var idErr *firebase.IdentityError
	if stderrors.As(err, &idErr) {
		if idErr.Status >= http.StatusInternalServerError {
			return errors.ServiceUnavailable(idErr.Message, err)
		}
		return errors.Unauthorized(idErr.Message, err)
	}
	return errors.ServiceUnavailable("Authentication service unavailable", err)
}
