package models

import "time"

// Player represents a registered account used for authentication and
// leaderboard attribution. It contains identity attributes and
// credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type Player struct {
	// PlayerID is the opaque unique identifier of the player (UUID).
	// It is issued by the server at registration time and presented by
	// the client on every authenticated request.
	PlayerID string `json:"id"`

	// Username is the unique player name: 3–20 characters, letters,
	// digits and underscore only. Used during login and shown on
	// leaderboards.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the player's password.
	// Never serialized; used only at the persistence layer.
	PasswordHash string `json:"-"`

	// Token is the player's single live access token: 48 hex characters.
	// Exactly one value is valid at any time; it is replaced on every
	// successful login and on every successful authenticated request.
	// Never serialized as part of the player entity — tokens travel only
	// inside the response envelope.
	Token string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Player model.
func (p Player) TableName() string {
	return "players"
}
