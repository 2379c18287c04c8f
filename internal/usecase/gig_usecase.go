package usecase

import (
	"context"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
	"gigmarket/pkg/errors"
)

type GigView struct {
	Profile    *entity.Profile `json:"profile"`
	CanRespond bool            `json:"can_respond"`
}

type GigUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewGigUseCase(profileRepo repository.ProfileRepository) *GigUseCase {
	return &GigUseCase{
		profileRepo: profileRepo,
	}
}

// View loads one seller gig. The owner may look but not respond.
func (uc *GigUseCase) View(ctx context.Context, viewerID, gigID string) (*GigView, error) {
	profile, err := uc.profileRepo.Get(ctx, entity.RoleSeller, gigID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("Gig", err)
		}
		return nil, err
	}

	return &GigView{
		Profile:    profile,
		CanRespond: viewerID != gigID,
	}, nil
}
