package models

import "time"

// MaxScore is the upper bound accepted for a submitted score.
// Submissions above it are rejected regardless of the stored record.
const MaxScore = 999999

// ScoreRecord is the persisted score state for one (player, mode) pair.
// The sequence of accepted scores for a given pair is non-decreasing and
// advances by exactly one per accepted update; the only legal opening
// values are 0 and 1.
type ScoreRecord struct {
	// PlayerID is the owning player's UUID.
	PlayerID string `json:"id"`

	// Mode is the leaderboard category this record belongs to.
	Mode GameMode `json:"mode"`

	// Score is the current accepted score. Non-negative, at most [MaxScore].
	Score int `json:"score"`

	// Deaths is the death count reported with the latest accepted update.
	Deaths int `json:"deathCount"`

	// UpdatedAt is the timestamp of the latest accepted update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ScoreRecord model.
func (s ScoreRecord) TableName() string {
	return "scores"
}

// ScoreSubmission is the minimal payload of one score update attempt,
// carried in the data field of an authenticated request.
type ScoreSubmission struct {
	// Mode names the leaderboard category being updated.
	Mode GameMode `json:"mode"`

	// Score is the proposed new score value.
	Score int `json:"score"`

	// Deaths is the death count accompanying the submission.
	Deaths int `json:"deathCount"`
}

// LeaderboardEntry is one row of a leaderboard read: a score record
// joined with the owning player's username.
type LeaderboardEntry struct {
	// Rank is the 1-based position within the returned page.
	Rank int `json:"rank"`

	// Username is the display name of the player holding this score.
	Username string `json:"username"`

	// Score is the player's current score in the requested mode.
	Score int `json:"score"`

	// Deaths is the death count stored with the score.
	Deaths int `json:"deathCount"`

	// UpdatedAt is when the score was last advanced.
	UpdatedAt time.Time `json:"updated_at"`
}
