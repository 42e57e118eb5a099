package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/models"
	"github.com/jackc/pgerrcode"
)

// playerRepository is the PostgreSQL-backed implementation of
// [PlayerRepository]. It handles player account creation, lookup, and the two
// token write paths (unconditional set and compare-and-swap rotation) against
// the "players" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type playerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlayerRepository constructs a [PlayerRepository] backed by the provided
// database connection and logger.
func NewPlayerRepository(db *DB, logger *logger.Logger) PlayerRepository {
	logger.Debug().Msg("creating player repository")
	return &playerRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePlayer persists a new player record and returns the fully populated
// [models.Player] with server-assigned fields (CreatedAt).
//
// The INSERT uses the [createPlayer] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *playerRepository) CreatePlayer(ctx context.Context, player models.Player) (models.Player, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPlayer, player.PlayerID, player.Username, player.PasswordHash, player.Token)

	// create player in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*playerRepository.CreatePlayer").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Player{}, ErrUsernameTaken
		default:
			return models.Player{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved player from db
	if err := row.Scan(&player.PlayerID, &player.Username, &player.PasswordHash, &player.Token, &player.CreatedAt); err != nil {
		log.Err(err).Str("func", "*playerRepository.CreatePlayer").Msg("error: scanning error")
		return models.Player{}, err
	}

	return player, nil
}

// FindPlayerByUsername retrieves the player record whose username matches the
// provided value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrPlayerNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *playerRepository) FindPlayerByUsername(ctx context.Context, username string) (models.Player, error) {
	log := logger.FromContext(ctx)

	return r.findPlayer(ctx, log, "*playerRepository.FindPlayerByUsername", findPlayerByUsername, username)
}

// FindPlayerByID retrieves the player record for the given player id.
//
// Error handling mirrors [playerRepository.FindPlayerByUsername].
func (r *playerRepository) FindPlayerByID(ctx context.Context, playerID string) (models.Player, error) {
	log := logger.FromContext(ctx)

	return r.findPlayer(ctx, log, "*playerRepository.FindPlayerByID", findPlayerByID, playerID)
}

func (r *playerRepository) findPlayer(ctx context.Context, log *logger.Logger, caller string, query string, arg string) (models.Player, error) {
	var found models.Player
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", caller).Msg("error: row is nil")
		return models.Player{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.PlayerID, &found.Username, &found.PasswordHash, &found.Token, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Player{}, ErrPlayerNotFound
		}
		log.Err(err).Str("func", caller).Msg("error: scanning error")
		return models.Player{}, err
	}

	return found, nil
}

// SetToken unconditionally overwrites the stored token for a player. Used on
// login and registration, which always issue a fresh token regardless of the
// previous one.
//
// Returns [ErrPlayerNotFound] when no row matches the player id.
func (r *playerRepository) SetToken(ctx context.Context, playerID string, token string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setPlayerToken, playerID, token)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.SetToken").Msg("error executing token update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// SwapToken atomically replaces oldToken with newToken for a player. The
// UPDATE carries both the player id and the old token in its WHERE clause, so
// the swap succeeds only when the stored token is still the presented one.
//
// Returns [ErrTokenMismatch] when zero rows are affected: either the token
// was already rotated by a concurrent request or the player does not exist.
func (r *playerRepository) SwapToken(ctx context.Context, playerID string, oldToken string, newToken string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, swapPlayerToken, playerID, oldToken, newToken)
	if err != nil {
		log.Err(err).Str("func", "*playerRepository.SwapToken").Msg("error executing token swap")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTokenMismatch
	}

	return nil
}
