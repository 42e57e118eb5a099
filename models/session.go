package models

import "time"

// Session is the client-side authentication state persisted between runs:
// the player's identity and the most recently adopted access token. The
// token changes on every authenticated exchange, so the stored value is
// only as fresh as the last completed request.
type Session struct {
	// PlayerID is the player's UUID returned by register/login.
	PlayerID string `json:"id"`

	// Username is the display name used to log in.
	Username string `json:"username"`

	// Token is the latest adopted access token.
	Token string `json:"token"`

	// SavedAt is when this session state was last written.
	SavedAt time.Time `json:"saved_at"`
}

// TableName returns the name of the local database table associated with
// the Session model.
func (s Session) TableName() string {
	return "sessions"
}
