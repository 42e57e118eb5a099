package models

import "time"

// Achievement is one element of a player's achievement set. The set is
// append-only: awarding an identifier that is already present is a no-op
// reported as an operation failure, never an error.
type Achievement struct {
	// PlayerID is the owning player's UUID.
	PlayerID string `json:"-"`

	// AchievementID is the opaque achievement identifier.
	AchievementID string `json:"achievementId"`

	// AwardedAt is the timestamp when the achievement was granted.
	AwardedAt time.Time `json:"awarded_at"`
}

// TableName returns the name of the database table
// associated with the Achievement model.
func (a Achievement) TableName() string {
	return "achievements"
}
