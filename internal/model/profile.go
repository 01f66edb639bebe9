package model

// UserProfile is the installation owner's profile. Singleton per installation.
type UserProfile struct {
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Notifications bool   `json:"notifications"`
	EmailAlerts   bool   `json:"email_alerts"`
}

// DefaultProfile returns the profile used before the owner fills one in.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:          "Anonymous User",
		Notifications: true,
	}
}

// Preferences is an open mapping from preference name to value.
type Preferences map[string]any

// Well-known preference names and defaults.
const (
	PrefTheme       = "theme"
	PrefLanguage    = "language"
	DefaultTheme    = "light"
	DefaultLanguage = "pt-BR"
)
