package models

import "time"

// UserDB represents a user record in the database.
// UserID is the GitHub account id and never changes.
type UserDB struct {
	UserID        string    `json:"user_id" db:"user_id"`               // External identity id
	DisplayName   string    `json:"display_name" db:"display_name"`     // GitHub display name
	Username      string    `json:"username" db:"username"`             // GitHub login
	PublicRepos   int       `json:"public_repos" db:"public_repos"`     // GitHub public repository count
	SettingsName  string    `json:"settings_name" db:"settings_name"`   // User-editable name
	SettingsCity  string    `json:"settings_city" db:"settings_city"`   // User-editable city
	SettingsState string    `json:"settings_state" db:"settings_state"` // User-editable state
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`         // Last update timestamp
}

// Settings bundles the user-editable profile fields.
type Settings struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

// Settings returns the user-editable fields of the record.
func (u *UserDB) Settings() Settings {
	return Settings{
		Name:  u.SettingsName,
		City:  u.SettingsCity,
		State: u.SettingsState,
	}
}

// GitHubProfile is the subset of the GitHub user resource stored locally.
type GitHubProfile struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
}
