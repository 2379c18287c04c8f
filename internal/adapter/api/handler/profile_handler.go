package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/usecase"
	"gigmarket/pkg/errors"
	"gigmarket/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

type locationRequest struct {
	City string  `json:"city" validate:"max=100"`
	Lat  float64 `json:"lat" validate:"latitude"`
	Lon  float64 `json:"lon" validate:"longitude"`
}

type saveProfileRequest struct {
	Role        string           `json:"role" validate:"required,oneof=seller buyer"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Age         *int             `json:"age" validate:"omitempty,gte=0,lte=120"`
	Price       *float64         `json:"price" validate:"omitempty,gte=0"`
	WorkingDays *int             `json:"working_days" validate:"omitempty,gte=0,lte=7"`
	Category    *string          `json:"category" validate:"omitempty,oneof=cook driver cleaner mechanic others"`
	Visible     *bool            `json:"visible"`
	Location    *locationRequest `json:"location"`
}

func (r saveProfileRequest) toUpdate() entity.ProfileUpdate {
	u := entity.ProfileUpdate{
		Name:        r.Name,
		Age:         r.Age,
		Price:       r.Price,
		WorkingDays: r.WorkingDays,
		Visible:     r.Visible,
	}
	if r.Category != nil {
		category := entity.Category(*r.Category)
		u.Category = &category
	}
	if r.Location != nil {
		u.Location = &entity.Location{
			City: r.Location.City,
			Lat:  r.Location.Lat,
			Lon:  r.Location.Lon,
		}
	}
	return u
}

type profileResponse struct {
	Exists  bool            `json:"exists"`
	Profile *entity.Profile `json:"profile"`
}

type resolveLocationRequest struct {
	PermissionGranted bool    `json:"permission_granted"`
	Lat               float64 `json:"lat" validate:"latitude"`
	Lon               float64 `json:"lon" validate:"longitude"`
}

// GetProfile renders a missing profile as the default seller form.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	profile, err := h.profileUseCase.LoadProfile(c.Request().Context(), uid)
	if err != nil {
		return fail(c, err)
	}
	if profile == nil {
		return response.Success(c, profileResponse{Exists: false, Profile: entity.DefaultProfile(uid)})
	}

	return response.Success(c, profileResponse{Exists: true, Profile: profile})
}

func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	var req saveProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, err)
	}

	profile, err := h.profileUseCase.Save(c.Request().Context(), uid, entity.Role(req.Role), req.toUpdate())
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, profileResponse{Exists: true, Profile: profile})
}

// DeleteProfile requires ?confirm=true; ?role= is optional.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	confirmed := false
	if raw := c.QueryParam("confirm"); raw != "" {
		confirmed, err = strconv.ParseBool(raw)
		if err != nil {
			return fail(c, errors.BadRequest("confirm must be true or false", err))
		}
	}

	role := entity.Role(c.QueryParam("role"))
	if err := h.profileUseCase.Delete(c.Request().Context(), uid, role, confirmed); err != nil {
		return fail(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Profile deleted",
	})
}

func (h *ProfileHandler) ResolveLocation(c echo.Context) error {
	if _, err := currentUID(c); err != nil {
		return fail(c, err)
	}

	var req resolveLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, err)
	}

	result, err := h.profileUseCase.ResolveCurrentCity(c.Request().Context(), usecase.LocationInput{
		PermissionGranted: req.PermissionGranted,
		Lat:               req.Lat,
		Lon:               req.Lon,
	})
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, result)
}
