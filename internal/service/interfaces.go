package service

import (
	"context"

	"github.com/MKhiriev/go-score-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService manages the rotating access tokens players present on every
// authenticated request.
type TokenService interface {
	// Generate produces a fresh random token without persisting it.
	Generate() (string, error)
	// Issue unconditionally stores a fresh token for the player (login,
	// registration) and returns it.
	Issue(ctx context.Context, playerID string) (string, error)
	// Rotate atomically swaps the presented token for a fresh one. Fails
	// with store.ErrTokenMismatch when the presented token already lost a
	// concurrent rotation race.
	Rotate(ctx context.Context, playerID string, presented string) (string, error)
	// Verify compares a stored and a presented token in constant time.
	Verify(stored string, presented string) bool
}

// AuthService covers the player account surface: registration, credential
// login, and username availability.
type AuthService interface {
	Register(ctx context.Context, username string, password string) (models.Player, error)
	Login(ctx context.Context, username string, password string) (models.Player, error)
	Available(ctx context.Context, username string) (bool, error)
	// PlayerByID resolves the identity presented on an authenticated request.
	PlayerByID(ctx context.Context, playerID string) (models.Player, error)
}

// ScoreService enforces the monotonic score contract and serves the
// leaderboard reads.
type ScoreService interface {
	SubmitScore(ctx context.Context, player models.Player, submission models.ScoreSubmission) error
	TopScores(ctx context.Context, mode models.GameMode, timeframe models.Timeframe, limit int) ([]models.LeaderboardEntry, error)
	PlayerScores(ctx context.Context, playerID string, mode models.GameMode) ([]models.ScoreRecord, error)
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AchievementService manages the append-only achievement ledger.
type AchievementService interface {
	Award(ctx context.Context, player models.Player, achievementID string) error
	List(ctx context.Context, playerID string) ([]models.Achievement, error)
}
