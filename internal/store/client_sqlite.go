package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/models"
)

// ErrLocalSessionNotFound is returned when no session is persisted in the
// client's local database.
var ErrLocalSessionNotFound = errors.New("local session not found")

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The "sessions" table is constrained to a single row, so
// saving a session always replaces the previous one.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the local
// SQLite database.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession upserts the single session row. SavedAt is stamped here so
// callers never have to fill it in.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	session.SavedAt = time.Now()

	_, err := r.db.ExecContext(ctx, saveSession, session.PlayerID, session.Username, session.Token, session.SavedAt)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession reads the persisted session.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrLocalSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	row := r.db.QueryRowContext(ctx, getSession)

	if err := row.Err(); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&session.PlayerID, &session.Username, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		r.logger.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: scanning error")
		return models.Session{}, err
	}

	return session, nil
}

// DeleteSession removes the session row. Deleting when nothing is stored is a
// no-op.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
