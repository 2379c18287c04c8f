package usecase

import (
	"context"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
	"gigmarket/internal/infrastructure/telemetry"
	"gigmarket/pkg/errors"
	"gigmarket/pkg/logger"
)

const cityNotDetectedWarning = "could not detect city"

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	geocoder    Geocoder
	metrics     *telemetry.Metrics
}

func NewProfileUseCase(profileRepo repository.ProfileRepository, geocoder Geocoder, metrics *telemetry.Metrics) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		geocoder:    geocoder,
		metrics:     metrics,
	}
}

// LoadProfile looks in Sellers, then Buyers. A nil profile with a nil error
// means the user has none yet.
func (uc *ProfileUseCase) LoadProfile(ctx context.Context, uid string) (*entity.Profile, error) {
	for _, role := range []entity.Role{entity.RoleSeller, entity.RoleBuyer} {
		profile, err := uc.profileRepo.Get(ctx, role, uid)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}

	return nil, nil
}

type LocationInput struct {
	PermissionGranted bool
	Lat               float64
	Lon               float64
}

type CityResolution struct {
	Location entity.Location `json:"location"`
	Warning  string          `json:"warning,omitempty"`
}

// ResolveCurrentCity reverse-geocodes device coordinates. An unknown city is
// reported as a warning, not an error.
func (uc *ProfileUseCase) ResolveCurrentCity(ctx context.Context, input LocationInput) (*CityResolution, error) {
	if !input.PermissionGranted {
		return nil, errors.PermissionDenied("Location permission denied")
	}

	city, err := uc.geocoder.ReverseCity(ctx, input.Lat, input.Lon)
	if err != nil {
		uc.metrics.GeocodeLookup("error")
		return nil, errors.ServiceUnavailable("Failed to resolve current city", err)
	}

	result := &CityResolution{
		Location: entity.Location{
			City: entity.NormalizeCity(city),
			Lat:  input.Lat,
			Lon:  input.Lon,
		},
	}
	if result.Location.City == "" {
		uc.metrics.GeocodeLookup("empty")
		result.Warning = cityNotDetectedWarning
		return result, nil
	}

	uc.metrics.GeocodeLookup("ok")
	return result, nil
}

// Save merge-writes the supplied fields and returns the stored profile.
func (uc *ProfileUseCase) Save(ctx context.Context, uid string, role entity.Role, update entity.ProfileUpdate) (*entity.Profile, error) {
	if !role.Valid() {
		return nil, errors.BadRequest("role must be seller or buyer", nil)
	}
	if update.Category != nil && !update.Category.Valid() {
		return nil, errors.BadRequest("unknown category", nil)
	}
	if update.Empty() {
		return nil, errors.BadRequest("no fields to save", nil)
	}

	taken, err := uc.profileRepo.Exists(ctx, role.Other(), uid)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errors.Conflict("profile already exists as " + string(role.Other()))
	}

	exists, err := uc.profileRepo.Exists(ctx, role, uid)
	if err != nil {
		return nil, err
	}
	if !exists {
		update = update.WithDefaults()
	}

	if update.Location != nil {
		loc := *update.Location
		loc.City = entity.NormalizeCity(loc.City)
		update.Location = &loc
	}

	if err := uc.profileRepo.Merge(ctx, role, uid, update); err != nil {
		return nil, err
	}
	logger.Info("Profile saved: uid=%s, role=%s", uid, role)

	return uc.profileRepo.Get(ctx, role, uid)
}

// Delete hard-deletes the profile. An empty role means whichever collection
// currently holds it; deleting nothing succeeds. A role that does not match
// the stored profile is NotFound.
func (uc *ProfileUseCase) Delete(ctx context.Context, uid string, role entity.Role, confirmed bool) error {
	if !confirmed {
		return errors.BadRequest("confirmation required", nil)
	}
	if role != "" && !role.Valid() {
		return errors.BadRequest("role must be seller or buyer", nil)
	}

	profile, err := uc.LoadProfile(ctx, uid)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}
	if role == "" {
		role = profile.Role
	}
	if role != profile.Role {
		return errors.NotFound(string(role)+" profile", nil)
	}

	if err := uc.profileRepo.Delete(ctx, role, uid); err != nil {
		return err
	}
	logger.Info("Profile deleted: uid=%s, role=%s", uid, role)
	return nil
}
