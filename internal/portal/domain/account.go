package domain

import "time"

// ClientAccount is a portal login. The password is kept in plaintext to stay
// compatible with the existing stored accounts; do not reuse this type for
// anything that needs real credentials.
type ClientAccount struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"password"`
	FullName     string    `json:"fullName"`
	Organization string    `json:"organization"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile strips the credential from an account.
func (a ClientAccount) Profile() AccountProfile {
	return AccountProfile{
		ID:           a.ID,
		Username:     a.Username,
		FullName:     a.FullName,
		Organization: a.Organization,
		CreatedAt:    a.CreatedAt,
	}
}

// AccountProfile is an account without its password.
type AccountProfile struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"fullName"`
	Organization string    `json:"organization"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserData is the profile blob stored next to the session flags.
type UserData struct {
	FullName     string `json:"fullName"`
	Organization string `json:"organization"`
}

// Session is the rehydrated view of one browser's login state.
type Session struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
	UserData
}
