package usecase

import (
	"context"
	"encoding/json"

	"gigmarket/internal/domain/entity"
	"gigmarket/internal/domain/repository"
	"gigmarket/pkg/errors"
	"gigmarket/pkg/logger"
)

// DefaultVibrationPattern is a single 20ms pulse.
var DefaultVibrationPattern = []int{20}

// PreferenceUseCase reads fail closed: a storage error yields the default
// and is only logged.
type PreferenceUseCase struct {
	prefRepo repository.PreferenceRepository
}

func NewPreferenceUseCase(prefRepo repository.PreferenceRepository) *PreferenceUseCase {
	return &PreferenceUseCase{
		prefRepo: prefRepo,
	}
}

func (uc *PreferenceUseCase) read(ctx context.Context, uid, key string, dst interface{}) bool {
	raw, found, err := uc.prefRepo.Get(ctx, uid, key)
	if err != nil {
		logger.Warn("Preference read failed, using default: uid=%s, key=%s, error=%v", uid, key, err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Warn("Preference value unreadable, using default: uid=%s, key=%s, error=%v", uid, key, err)
		return false
	}
	return true
}

func (uc *PreferenceUseCase) write(ctx context.Context, uid, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Internal("Failed to encode preference", err)
	}
	if err := uc.prefRepo.Set(ctx, uid, key, string(raw)); err != nil {
		return errors.ServiceUnavailable("Failed to save preference", err)
	}
	return nil
}

func (uc *PreferenceUseCase) HapticsEnabled(ctx context.Context, uid string) bool {
	var enabled bool
	if !uc.read(ctx, uid, entity.PrefKeyHapticsEnabled, &enabled) {
		return true
	}
	return enabled
}

func (uc *PreferenceUseCase) SetHapticsEnabled(ctx context.Context, uid string, enabled bool) error {
	return uc.write(ctx, uid, entity.PrefKeyHapticsEnabled, enabled)
}

// DarkModeOverride returns nil when the theme follows the system.
func (uc *PreferenceUseCase) DarkModeOverride(ctx context.Context, uid string) *bool {
	var dark bool
	if !uc.read(ctx, uid, entity.PrefKeyDarkModeEnabled, &dark) {
		return nil
	}
	return &dark
}

// SetDarkModeOverride with nil removes the key rather than storing a null.
func (uc *PreferenceUseCase) SetDarkModeOverride(ctx context.Context, uid string, dark *bool) error {
	if dark == nil {
		if err := uc.prefRepo.Delete(ctx, uid, entity.PrefKeyDarkModeEnabled); err != nil {
			return errors.ServiceUnavailable("Failed to clear preference", err)
		}
		return nil
	}
	return uc.write(ctx, uid, entity.PrefKeyDarkModeEnabled, *dark)
}

func (uc *PreferenceUseCase) Language(ctx context.Context, uid string) string {
	var lang string
	if !uc.read(ctx, uid, entity.PrefKeyLanguage, &lang) || !entity.IsSupportedLanguage(lang) {
		return entity.DefaultLanguage
	}
	return lang
}

func (uc *PreferenceUseCase) SetLanguage(ctx context.Context, uid, lang string) error {
	if !entity.IsSupportedLanguage(lang) {
		return errors.BadRequest("unsupported language: "+lang, nil)
	}
	return uc.write(ctx, uid, entity.PrefKeyLanguage, lang)
}

func (uc *PreferenceUseCase) Flags(ctx context.Context, uid string) entity.PreferenceFlags {
	return entity.PreferenceFlags{
		HapticsEnabled:   uc.HapticsEnabled(ctx, uid),
		DarkModeOverride: uc.DarkModeOverride(ctx, uid),
		Language:         uc.Language(ctx, uid),
	}
}

// EffectiveTheme is the override when set, otherwise the host appearance.
func (uc *PreferenceUseCase) EffectiveTheme(ctx context.Context, uid string, system entity.Theme) entity.Theme {
	override := uc.DarkModeOverride(ctx, uid)
	if override == nil {
		return system
	}
	if *override {
		return entity.ThemeDark
	}
	return entity.ThemeLight
}

// VibrateIfEnabled reports whether the vibrator was invoked.
func (uc *PreferenceUseCase) VibrateIfEnabled(ctx context.Context, uid string, pattern []int, vibrator Vibrator) (bool, error) {
	if !uc.HapticsEnabled(ctx, uid) {
		return false, nil
	}
	if len(pattern) == 0 {
		pattern = DefaultVibrationPattern
	}
	if err := vibrator.Vibrate(ctx, pattern); err != nil {
		return false, err
	}
	return true, nil
}
