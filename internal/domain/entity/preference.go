package entity

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a host appearance hint to a theme; anything but "dark" is light.
func ParseTheme(s string) Theme {
	if s == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Storage keys carried over from the mobile client.
const (
	PrefKeyHapticsEnabled  = "@haptics_enabled"
	PrefKeyDarkModeEnabled = "@dark_mode_enabled"
	PrefKeyLanguage        = "@language"
)

const DefaultLanguage = "en"

var SupportedLanguages = []string{"en", "hi", "bn", "te", "mr", "ta", "ur", "gu", "kn", "ml", "or", "pa", "as", "ne"}

func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

type PreferenceFlags struct {
	HapticsEnabled   bool   `json:"haptics_enabled"`
	DarkModeOverride *bool  `json:"dark_mode_override"`
	Language         string `json:"language"`
}
