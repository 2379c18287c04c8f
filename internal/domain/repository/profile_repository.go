package repository

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks gigmarket/internal/domain/repository ProfileRepository,NotificationRepository,PreferenceRepository

import (
	"context"

	"gigmarket/internal/domain/entity"
)

type ProfileRepository interface {
	// Get returns errors.NotFound when the document does not exist.
	Get(ctx context.Context, role entity.Role, uid string) (*entity.Profile, error)
	Exists(ctx context.Context, role entity.Role, uid string) (bool, error)

	// Merge writes only the fields set in update; other stored fields survive.
	Merge(ctx context.Context, role entity.Role, uid string, update entity.ProfileUpdate) error
	Delete(ctx context.Context, role entity.Role, uid string) error

	FindByCity(ctx context.Context, role entity.Role, city string) ([]*entity.Profile, error)
}
