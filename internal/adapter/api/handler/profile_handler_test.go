package handler

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "gigmarket/internal/adapter/repository"
	"gigmarket/internal/domain/entity"
	"gigmarket/internal/mocks"
	"gigmarket/internal/usecase"
)

func setupProfile(t *testing.T, uid string) (*echo.Echo, *mocks.MockGeocoder) {
	ctrl := gomock.NewController(t)
	geocoder := mocks.NewMockGeocoder(ctrl)
	h := NewProfileHandler(usecase.NewProfileUseCase(adapterrepo.NewMemoryProfileRepository(), geocoder, nil))

	e := newTestEcho()
	g := e.Group("/v1", asUser(uid))
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.SaveProfile)
	g.DELETE("/profile", h.DeleteProfile)
	g.POST("/location/resolve", h.ResolveLocation)
	return e, geocoder
}

func TestProfileHandler_GetMissingReturnsDefault(t *testing.T) {
	e, _ := setupProfile(t, "u1")

	rec, env := do(t, e, http.MethodGet, "/v1/profile", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var got profileResponse
	decodeData(t, env, &got)
	assert.False(t, got.Exists)
	require.NotNil(t, got.Profile)
	assert.Equal(t, entity.RoleSeller, got.Profile.Role)
	assert.Equal(t, entity.CategoryCook, got.Profile.Category)
}

func TestProfileHandler_SaveThenGet(t *testing.T) {
	e, _ := setupProfile(t, "u1")

	body := `{"role":"seller","name":"Asha","price":450,"category":"driver","location":{"city":"  Pune ","lat":18.52,"lon":73.85}}`
	rec, env := do(t, e, http.MethodPut, "/v1/profile", body)
	require.Equal(t, http.StatusOK, rec.Code, env)

	var saved profileResponse
	decodeData(t, env, &saved)
	assert.Equal(t, "Asha", saved.Profile.Name)
	assert.Equal(t, "pune", saved.Profile.Location.City)

	rec, env = do(t, e, http.MethodPut, "/v1/profile", `{"role":"seller","age":31}`)
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, e, http.MethodGet, "/v1/profile", "")
	var got profileResponse
	decodeData(t, env, &got)
	assert.True(t, got.Exists)
	assert.Equal(t, "Asha", got.Profile.Name)
	assert.Equal(t, 31, got.Profile.Age)
	assert.Equal(t, entity.CategoryDriver, got.Profile.Category)
}

func TestProfileHandler_SaveValidation(t *testing.T) {
	e, _ := setupProfile(t, "u1")

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"bad role", `{"role":"admin","name":"x"}`, http.StatusBadRequest, "role must be one of: seller buyer"},
		{"bad category", `{"role":"seller","category":"pilot"}`, http.StatusBadRequest, "category must be one of: cook driver cleaner mechanic others"},
		{"empty save", `{"role":"buyer"}`, http.StatusBadRequest, "no fields to save"},
		{"bad latitude", `{"role":"seller","location":{"city":"pune","lat":123,"lon":0}}`, http.StatusBadRequest, "lat must be a valid coordinate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, e, http.MethodPut, "/v1/profile", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.message, env.Error.Message)
		})
	}
}

func TestProfileHandler_RoleConflict(t *testing.T) {
	e, _ := setupProfile(t, "u1")

	rec, _ := do(t, e, http.MethodPut, "/v1/profile", `{"role":"buyer","name":"B"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, e, http.MethodPut, "/v1/profile", `{"role":"seller","name":"S"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "profile already exists as buyer", env.Error.Message)
}

func TestProfileHandler_Delete(t *testing.T) {
	e, _ := setupProfile(t, "u1")

	rec, _ := do(t, e, http.MethodPut, "/v1/profile", `{"role":"seller","name":"S"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, e, http.MethodDelete, "/v1/profile", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "confirmation required", env.Error.Message)

	rec, _ = do(t, e, http.MethodDelete, "/v1/profile?confirm=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, e, http.MethodDelete, "/v1/profile?confirm=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, e, http.MethodGet, "/v1/profile", "")
	var got profileResponse
	decodeData(t, env, &got)
	assert.False(t, got.Exists)

	rec, _ = do(t, e, http.MethodDelete, "/v1/profile?confirm=true&role=seller", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_DeleteWrongRole(t *testing.T) {
	e, _ := setupProfile(t, "u1")

	rec, _ := do(t, e, http.MethodPut, "/v1/profile", `{"role":"seller","name":"S"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, e, http.MethodDelete, "/v1/profile?confirm=true&role=buyer", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "buyer profile not found", env.Error.Message)

	_, env = do(t, e, http.MethodGet, "/v1/profile", "")
	var got profileResponse
	decodeData(t, env, &got)
	assert.True(t, got.Exists)
}

func TestProfileHandler_ResolveLocation(t *testing.T) {
	e, geocoder := setupProfile(t, "u1")

	geocoder.EXPECT().ReverseCity(gomock.Any(), 18.52, 73.85).Return("Pune", nil)
	rec, env := do(t, e, http.MethodPost, "/v1/location/resolve", `{"permission_granted":true,"lat":18.52,"lon":73.85}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got usecase.CityResolution
	decodeData(t, env, &got)
	assert.Equal(t, "pune", got.Location.City)
	assert.Empty(t, got.Warning)

	geocoder.EXPECT().ReverseCity(gomock.Any(), 0.0, 0.0).Return("", nil)
	_, env = do(t, e, http.MethodPost, "/v1/location/resolve", `{"permission_granted":true,"lat":0,"lon":0}`)
	decodeData(t, env, &got)
	assert.Equal(t, "could not detect city", got.Warning)

	geocoder.EXPECT().ReverseCity(gomock.Any(), 1.0, 1.0).Return("", stderrors.New("timeout"))
	rec, env = do(t, e, http.MethodPost, "/v1/location/resolve", `{"permission_granted":true,"lat":1,"lon":1}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "UPSTREAM_ERROR", env.Error.Code)

	rec, env = do(t, e, http.MethodPost, "/v1/location/resolve", `{"permission_granted":false}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "LOCATION_PERMISSION_DENIED", env.Error.Code)
}
