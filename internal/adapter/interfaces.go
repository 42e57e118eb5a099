// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer of the terminal client.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the wire protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPServerAdapter]) speaking the score-board API:
// a flat account surface plus the authenticated envelope exchange in which
// the access token rotates on every request.
//
// Error values defined in errors.go are produced by the envelope and status
// mapping so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for an identity-layer rejection).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-score-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the score-board
// server. Implementations are responsible for serialisation, session and
// token management, and mapping transport-level failures to the sentinel
// values defined in this package.
//
// The access token is single-use: every authenticated call consumes the
// stored token and adopts the freshly rotated one from the response, even
// when the operation itself is rejected. Callers should persist the session
// returned by [ServerAdapter.Session] after each authenticated call.
type ServerAdapter interface {
	// SetSession installs the (player id, token) pair used by subsequent
	// authenticated requests. Called after Register, Login, or when a
	// previously persisted session is restored.
	SetSession(session models.Session)

	// Session returns the current session, including the most recently
	// adopted access token.
	Session() models.Session

	// ServerVersion fetches the server's application version string.
	ServerVersion(ctx context.Context) (string, error)

	// Available reports whether username is free for registration.
	Available(ctx context.Context, username string) (bool, error)

	// Register creates a new account and installs the issued session.
	// A rejection by the server is returned as [ErrCredentialsRejected]
	// wrapped with the server's reason.
	Register(ctx context.Context, username string, password string) (models.Session, error)

	// Login authenticates an existing account and installs the issued
	// session. A rejection is returned as [ErrCredentialsRejected] wrapped
	// with the server's reason.
	Login(ctx context.Context, username string, password string) (models.Session, error)

	// Logout performs the authenticated logout exchange. The server-side
	// token rotates as with any authenticated call; the caller is expected
	// to discard the local session afterwards.
	Logout(ctx context.Context) error

	// SubmitScore sends one score update attempt for the current player.
	// Returns [ErrOperationRejected] when the server refuses the value.
	SubmitScore(ctx context.Context, submission models.ScoreSubmission) error

	// TopScores reads the public leaderboard for the given mode, timeframe
	// and entry limit.
	TopScores(ctx context.Context, mode models.GameMode, timeframe models.Timeframe, limit int) ([]models.LeaderboardEntry, error)

	// PlayerScores reads the current player's stored score records,
	// optionally narrowed to a single mode (empty mode means all).
	PlayerScores(ctx context.Context, mode models.GameMode) ([]models.ScoreRecord, error)

	// Achievements lists the current player's achievement set.
	Achievements(ctx context.Context) ([]models.Achievement, error)

	// Award grants an achievement to the current player. A duplicate award
	// is reported as [ErrOperationRejected].
	Award(ctx context.Context, achievementID string) error
}
