package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "gigmarket/internal/adapter/repository"
	"gigmarket/internal/domain/entity"
	"gigmarket/internal/mocks"
	"gigmarket/pkg/errors"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func categoryPtr(c entity.Category) *entity.Category { return &c }

func newProfileUseCase(t *testing.T) (*ProfileUseCase, *mocks.MockGeocoder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	geo := mocks.NewMockGeocoder(ctrl)
	return NewProfileUseCase(adapterrepo.NewMemoryProfileRepository(), geo, nil), geo
}

func TestProfileUseCase_LoadAbsent(t *testing.T) {
	uc, _ := newProfileUseCase(t)

	profile, err := uc.LoadProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileUseCase_LoadReportsRole(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	_, err := uc.Save(ctx, "buyer1", entity.RoleBuyer, entity.ProfileUpdate{Name: strPtr("Asha")})
	require.NoError(t, err)

	profile, err := uc.LoadProfile(ctx, "buyer1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, entity.RoleBuyer, profile.Role)
	assert.Equal(t, "buyer1", profile.ID)
}

func TestProfileUseCase_SaveMergesFields(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	_, err := uc.Save(ctx, "u1", entity.RoleSeller, entity.ProfileUpdate{
		Name:     strPtr("Ravi"),
		Age:      intPtr(31),
		Category: categoryPtr(entity.CategoryDriver),
		Visible:  boolPtr(true),
		Location: &entity.Location{City: "  Delhi ", Lat: 28.61, Lon: 77.2},
	})
	require.NoError(t, err)

	saved, err := uc.Save(ctx, "u1", entity.RoleSeller, entity.ProfileUpdate{
		Price:       floatPtr(450),
		WorkingDays: intPtr(5),
	})
	require.NoError(t, err)

	loaded, err := uc.LoadProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	assert.Equal(t, "Ravi", loaded.Name)
	assert.Equal(t, 31, loaded.Age)
	assert.Equal(t, 450.0, loaded.Price)
	assert.Equal(t, 5, loaded.WorkingDays)
	assert.Equal(t, entity.CategoryDriver, loaded.Category)
	assert.True(t, loaded.Visible)
	require.NotNil(t, loaded.Location)
	assert.Equal(t, "delhi", loaded.Location.City)
}

func TestProfileUseCase_FirstPartialSaveGetsFormDefaults(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	saved, err := uc.Save(ctx, "u1", entity.RoleSeller, entity.ProfileUpdate{Name: strPtr("Ravi")})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryCook, saved.Category)
	assert.True(t, saved.Category.Valid())
	assert.True(t, saved.Visible)

	// Later saves keep what is stored instead of resetting to defaults.
	_, err = uc.Save(ctx, "u1", entity.RoleSeller, entity.ProfileUpdate{
		Category: categoryPtr(entity.CategoryMechanic),
		Visible:  boolPtr(false),
	})
	require.NoError(t, err)

	saved, err = uc.Save(ctx, "u1", entity.RoleSeller, entity.ProfileUpdate{Age: intPtr(40)})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryMechanic, saved.Category)
	assert.False(t, saved.Visible)
	assert.Equal(t, "Ravi", saved.Name)
}

func TestProfileUseCase_FirstSaveKeepsSuppliedCategory(t *testing.T) {
	uc, _ := newProfileUseCase(t)

	saved, err := uc.Save(context.Background(), "b1", entity.RoleBuyer, entity.ProfileUpdate{
		Category: categoryPtr(entity.CategoryCleaner),
		Visible:  boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryCleaner, saved.Category)
	assert.False(t, saved.Visible)
}

func TestProfileUseCase_SaveRejections(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	_, err := uc.Save(ctx, "u1", entity.RoleSeller, entity.ProfileUpdate{Name: strPtr("Ravi")})
	require.NoError(t, err)

	tests := []struct {
		name     string
		role     entity.Role
		update   entity.ProfileUpdate
		wantCode string
	}{
		{"unknown role", entity.Role("admin"), entity.ProfileUpdate{Name: strPtr("x")}, "BAD_REQUEST"},
		{"unknown category", entity.RoleSeller, entity.ProfileUpdate{Category: categoryPtr("plumber")}, "BAD_REQUEST"},
		{"nothing to save", entity.RoleSeller, entity.ProfileUpdate{}, "BAD_REQUEST"},
		{"role switch", entity.RoleBuyer, entity.ProfileUpdate{Name: strPtr("Ravi")}, "CONFLICT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Save(ctx, "u1", tt.role, tt.update)
			assert.Equal(t, tt.wantCode, appError(t, err).Code)
		})
	}
}

func TestProfileUseCase_Delete(t *testing.T) {
	repo := adapterrepo.NewMemoryProfileRepository()
	uc := NewProfileUseCase(repo, nil, nil)
	discovery := NewDiscoveryUseCase(repo, nil)
	ctx := context.Background()

	_, err := uc.Save(ctx, "u1", entity.RoleSeller, entity.ProfileUpdate{
		Name:     strPtr("Ravi"),
		Location: &entity.Location{City: "pune"},
	})
	require.NoError(t, err)

	found, _, err := discovery.Search(ctx, "pune")
	require.NoError(t, err)
	require.Len(t, found, 1)

	err = uc.Delete(ctx, "u1", entity.RoleSeller, false)
	assert.Equal(t, "confirmation required", appError(t, err).Message)

	require.NoError(t, uc.Delete(ctx, "u1", "", true))

	profile, err := uc.LoadProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, profile)

	found, _, err = discovery.Search(ctx, "pune")
	require.NoError(t, err)
	assert.Empty(t, found)

	assert.NoError(t, uc.Delete(ctx, "u1", entity.RoleSeller, true))
	assert.NoError(t, uc.Delete(ctx, "ghost", "", true))
}

func TestProfileUseCase_DeleteWrongRole(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	_, err := uc.Save(ctx, "u1", entity.RoleSeller, entity.ProfileUpdate{Name: strPtr("Ravi")})
	require.NoError(t, err)

	err = uc.Delete(ctx, "u1", entity.RoleBuyer, true)
	appErr := appError(t, err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "buyer profile not found", appErr.Message)

	err = uc.Delete(ctx, "u1", entity.Role("admin"), true)
	assert.Equal(t, "BAD_REQUEST", appError(t, err).Code)

	profile, err := uc.LoadProfile(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, entity.RoleSeller, profile.Role)
}

func TestProfileUseCase_LoadPropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProfileRepository(ctrl)
	uc := NewProfileUseCase(repo, nil, nil)

	repo.EXPECT().Get(gomock.Any(), entity.RoleSeller, "u1").
		Return(nil, errors.ServiceUnavailable("Failed to load profile", stderrors.New("unavailable")))

	_, err := uc.LoadProfile(context.Background(), "u1")
	assert.True(t, errors.Is(err, "UPSTREAM_ERROR"))
}

func TestProfileUseCase_ResolveCurrentCity(t *testing.T) {
	ctx := context.Background()

	t.Run("permission denied", func(t *testing.T) {
		uc, _ := newProfileUseCase(t)
		_, err := uc.ResolveCurrentCity(ctx, LocationInput{PermissionGranted: false, Lat: 1, Lon: 2})
		assert.Equal(t, "LOCATION_PERMISSION_DENIED", appError(t, err).Code)
	})

	t.Run("city found", func(t *testing.T) {
		uc, geo := newProfileUseCase(t)
		geo.EXPECT().ReverseCity(gomock.Any(), 19.07, 72.87).Return("Mumbai", nil)

		res, err := uc.ResolveCurrentCity(ctx, LocationInput{PermissionGranted: true, Lat: 19.07, Lon: 72.87})
		require.NoError(t, err)
		assert.Equal(t, entity.Location{City: "mumbai", Lat: 19.07, Lon: 72.87}, res.Location)
		assert.Empty(t, res.Warning)
	})

	t.Run("no city is a warning", func(t *testing.T) {
		uc, geo := newProfileUseCase(t)
		geo.EXPECT().ReverseCity(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil)

		res, err := uc.ResolveCurrentCity(ctx, LocationInput{PermissionGranted: true})
		require.NoError(t, err)
		assert.Empty(t, res.Location.City)
		assert.Equal(t, "could not detect city", res.Warning)
	})

	t.Run("geocoder failure", func(t *testing.T) {
		uc, geo := newProfileUseCase(t)
		geo.EXPECT().ReverseCity(gomock.Any(), gomock.Any(), gomock.Any()).Return("", stderrors.New("status 500"))

		_, err := uc.ResolveCurrentCity(ctx, LocationInput{PermissionGranted: true})
		assert.Equal(t, "UPSTREAM_ERROR", appError(t, err).Code)
	})
}
