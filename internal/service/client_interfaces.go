package service

import (
	"context"

	"github.com/MKhiriev/go-score-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for account management
// and session persistence. Implementations talk to the server through the
// adapter and keep the local session store in step with the token rotation.
type ClientAuthService interface {
	// Register creates a new account on the server and persists the issued
	// session locally.
	Register(ctx context.Context, username string, password string) (models.Session, error)

	// Login authenticates against the server and persists the issued
	// session locally.
	Login(ctx context.Context, username string, password string) (models.Session, error)

	// Available reports whether username is free for registration.
	Available(ctx context.Context, username string) (bool, error)

	// RestoreSession loads the locally persisted session and installs it
	// into the adapter. Returns [store.ErrLocalSessionNotFound] (wrapped)
	// when no session was saved.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout performs the server logout exchange and removes the local
	// session. The local session is removed even when the server call
	// fails: a stale token is useless either way.
	Logout(ctx context.Context) error
}

// ClientGameService defines the client-side contract for the game surface:
// leaderboards, score submission, and achievements. Every authenticated call
// rotates the access token, and implementations persist the fresh session
// after each exchange, rejected operations included.
type ClientGameService interface {
	// Leaderboard reads the public top-scores list.
	Leaderboard(ctx context.Context, mode models.GameMode, timeframe models.Timeframe, limit int) ([]models.LeaderboardEntry, error)

	// SubmitScore sends one score update attempt for the current player.
	SubmitScore(ctx context.Context, submission models.ScoreSubmission) error

	// MyScores reads the current player's stored score records, optionally
	// narrowed to a single mode.
	MyScores(ctx context.Context, mode models.GameMode) ([]models.ScoreRecord, error)

	// Achievements lists the current player's achievement set.
	Achievements(ctx context.Context) ([]models.Achievement, error)

	// Award grants an achievement to the current player.
	Award(ctx context.Context, achievementID string) error

	// ServerVersion fetches the server's application version string.
	ServerVersion(ctx context.Context) (string, error)
}
