package handler

import (
	"context"
	"encoding/json"

	"github.com/labstack/echo/v4"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/usecase"
	"gigmarket/pkg/response"
)

type PreferenceHandler struct {
	preferenceUseCase *usecase.PreferenceUseCase
}

func NewPreferenceHandler(preferenceUseCase *usecase.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUseCase: preferenceUseCase,
	}
}

// nullableBool tells an absent field apart from an explicit null.
type nullableBool struct {
	Set   bool
	Value *bool
}

func (n *nullableBool) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type updatePreferencesRequest struct {
	HapticsEnabled   *bool        `json:"haptics_enabled"`
	DarkModeOverride nullableBool `json:"dark_mode_override"`
	Language         *string      `json:"language" validate:"omitempty,len=2"`
}

type themeResponse struct {
	Theme  entity.Theme `json:"theme"`
	System entity.Theme `json:"system"`
}

type hapticsRequest struct {
	Pattern []int `json:"pattern" validate:"omitempty,max=32,dive,gte=0,lte=5000"`
}

type hapticsResponse struct {
	Vibrated bool  `json:"vibrated"`
	Pattern  []int `json:"pattern,omitempty"`
}

// echoVibrator records the pattern so the client can play it back locally.
type echoVibrator struct {
	played []int
}

func (v *echoVibrator) Vibrate(_ context.Context, pattern []int) error {
	v.played = append([]int(nil), pattern...)
	return nil
}

func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, h.preferenceUseCase.Flags(c.Request().Context(), uid))
}

func (h *PreferenceHandler) UpdatePreferences(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	var req updatePreferencesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, err)
	}

	ctx := c.Request().Context()
	if req.HapticsEnabled != nil {
		if err := h.preferenceUseCase.SetHapticsEnabled(ctx, uid, *req.HapticsEnabled); err != nil {
			return fail(c, err)
		}
	}
	if req.DarkModeOverride.Set {
		if err := h.preferenceUseCase.SetDarkModeOverride(ctx, uid, req.DarkModeOverride.Value); err != nil {
			return fail(c, err)
		}
	}
	if req.Language != nil {
		if err := h.preferenceUseCase.SetLanguage(ctx, uid, *req.Language); err != nil {
			return fail(c, err)
		}
	}

	return response.Success(c, h.preferenceUseCase.Flags(ctx, uid))
}

// GetTheme takes the host appearance from the Sec-CH-Prefers-Color-Scheme
// client hint, or ?system= when the hint is absent.
func (h *PreferenceHandler) GetTheme(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	hint := c.Request().Header.Get("Sec-CH-Prefers-Color-Scheme")
	if hint == "" {
		hint = c.QueryParam("system")
	}
	system := entity.ParseTheme(hint)

	return response.Success(c, themeResponse{
		Theme:  h.preferenceUseCase.EffectiveTheme(c.Request().Context(), uid, system),
		System: system,
	})
}

func (h *PreferenceHandler) Haptics(c echo.Context) error {
	uid, err := currentUID(c)
	if err != nil {
		return fail(c, err)
	}

	var req hapticsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return fail(c, err)
	}

	vibrator := &echoVibrator{}
	vibrated, err := h.preferenceUseCase.VibrateIfEnabled(c.Request().Context(), uid, req.Pattern, vibrator)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, hapticsResponse{
		Vibrated: vibrated,
		Pattern:  vibrator.played,
	})
}
