package store

import (
	"context"

	"github.com/MKhiriev/go-score-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PlayerRepository is the persistence surface for player accounts and their
// access tokens.
//
// Token operations are deliberately split:
//   - [PlayerRepository.SetToken] overwrites unconditionally and backs
//     login/register, which always issue a fresh token.
//   - [PlayerRepository.SwapToken] is an atomic compare-and-swap and backs
//     per-request rotation; it fails with [ErrTokenMismatch] when the stored
//     token is no longer the presented one.
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, player models.Player) (models.Player, error)
	FindPlayerByUsername(ctx context.Context, username string) (models.Player, error)
	FindPlayerByID(ctx context.Context, playerID string) (models.Player, error)
	SetToken(ctx context.Context, playerID string, token string) error
	SwapToken(ctx context.Context, playerID string, oldToken string, newToken string) error
}

// ScoreRepository is the persistence surface for per-(player, mode) score
// records and leaderboard reads.
//
// UpdateScore is conditional on the previously observed score value; zero
// affected rows surface as [ErrScoreConflict] so the service can reject
// submissions that lost a concurrent race.
type ScoreRepository interface {
	GetScore(ctx context.Context, playerID string, mode models.GameMode) (models.ScoreRecord, error)
	InsertScore(ctx context.Context, record models.ScoreRecord) error
	UpdateScore(ctx context.Context, record models.ScoreRecord, expectedScore int) error
	ListTopScores(ctx context.Context, mode models.GameMode, timeframe models.Timeframe, limit uint64) ([]models.LeaderboardEntry, error)
	ListPlayerScores(ctx context.Context, playerID string) ([]models.ScoreRecord, error)
}

// AchievementRepository is the persistence surface for the achievement ledger.
//
// AddAchievement reports whether the row was actually inserted: a duplicate
// award is absorbed by the primary-key constraint and reported as false, nil.
type AchievementRepository interface {
	ListAchievements(ctx context.Context, playerID string) ([]models.Achievement, error)
	AddAchievement(ctx context.Context, achievement models.Achievement) (bool, error)
	WipeAchievements(ctx context.Context, playerID string) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
