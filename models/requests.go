package models

// Request and response shapes of the unauthenticated account surface.
// Authenticated operations use [AuthRequest] / [AuthEnvelope] instead.

// CredentialsRequest carries a username/password pair for registration
// and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CredentialsResponse is the flat response of registration and login.
type CredentialsResponse struct {
	// Successful reports whether the account operation succeeded.
	Successful bool `json:"successful"`

	// Reason is the human-readable failure reason. Present only when
	// Successful is false.
	Reason string `json:"reason,omitempty"`

	// UUID is the player's identity, present on success.
	UUID string `json:"uuid,omitempty"`

	// AccessToken is the freshly issued token, present on success.
	AccessToken string `json:"accessToken,omitempty"`
}

// AvailableRequest asks whether a username is free for registration.
type AvailableRequest struct {
	Username string `json:"username"`
}

// AvailableResponse answers a username availability check.
type AvailableResponse struct {
	Available bool `json:"available"`
}

// PlayerScoresRequest reads the stored score records of one player,
// optionally narrowed to a single mode.
type PlayerScoresRequest struct {
	ID   string   `json:"id"`
	Mode GameMode `json:"mode,omitempty"`
}

// AwardRequest is the data payload of an achievement award operation.
type AwardRequest struct {
	AchievementID string `json:"achievementId"`
}
