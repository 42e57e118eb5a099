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

// scoreRepository is the PostgreSQL-backed implementation of
// [ScoreRepository]. It manages the per-(player, mode) score records in the
// "scores" table and the leaderboard read path.
type scoreRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScoreRepository constructs a [ScoreRepository] backed by the provided
// database connection and logger.
func NewScoreRepository(db *DB, logger *logger.Logger) ScoreRepository {
	logger.Debug().Msg("creating score repository")
	return &scoreRepository{
		db:     db,
		logger: logger,
	}
}

// GetScore reads the score record for a (player, mode) pair.
//
// Returns [ErrScoreNotFound] when the player has never submitted for the
// mode, which the service layer treats as "first submission".
func (r *scoreRepository) GetScore(ctx context.Context, playerID string, mode models.GameMode) (models.ScoreRecord, error) {
	log := logger.FromContext(ctx)

	var record models.ScoreRecord
	row := r.db.QueryRowContext(ctx, getScore, playerID, mode.String())

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*scoreRepository.GetScore").Msg("error: row is nil")
		return models.ScoreRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&record.PlayerID, &record.Mode, &record.Score, &record.Deaths, &record.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ScoreRecord{}, ErrScoreNotFound
		}
		log.Err(err).Str("func", "*scoreRepository.GetScore").Msg("error: scanning error")
		return models.ScoreRecord{}, err
	}

	return record, nil
}

// InsertScore creates the first score record for a (player, mode) pair.
//
// A concurrent first submission loses to the primary-key constraint and is
// reported as [ErrScoreConflict].
func (r *scoreRepository) InsertScore(ctx context.Context, record models.ScoreRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertScore, record.PlayerID, record.Mode.String(), record.Score, record.Deaths)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.InsertScore").Msg("error executing score insert")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrScoreConflict
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// UpdateScore replaces the stored score and death count, conditional on the
// stored score still being expectedScore.
//
// Zero affected rows mean a concurrent submission already advanced the score
// past the value the caller verified against; that surfaces as
// [ErrScoreConflict] and the submission is rejected.
func (r *scoreRepository) UpdateScore(ctx context.Context, record models.ScoreRecord, expectedScore int) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateScore, record.PlayerID, record.Mode.String(), record.Score, record.Deaths, expectedScore)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.UpdateScore").Msg("error executing score update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrScoreConflict
	}

	return nil
}

// ListTopScores reads the leaderboard for a mode and timeframe, at most limit
// rows. The query is built with squirrel (see [buildTopScoresQuery]); ranks
// are assigned in result order starting from 1.
func (r *scoreRepository) ListTopScores(ctx context.Context, mode models.GameMode, timeframe models.Timeframe, limit uint64) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTopScoresQuery(mode, timeframe, limit)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.ListTopScores").Msg("error building leaderboard query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.ListTopScores").Msg("error executing leaderboard query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err = rows.Scan(&entry.Username, &entry.Score, &entry.Deaths, &entry.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*scoreRepository.ListTopScores").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.Rank = len(entries) + 1
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// ListPlayerScores reads all score records of one player across modes.
func (r *scoreRepository) ListPlayerScores(ctx context.Context, playerID string) ([]models.ScoreRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPlayerScores, playerID)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.ListPlayerScores").Msg("error executing player scores query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ScoreRecord, 0, len(models.GameModes))
	for rows.Next() {
		var record models.ScoreRecord
		if err = rows.Scan(&record.PlayerID, &record.Mode, &record.Score, &record.Deaths, &record.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*scoreRepository.ListPlayerScores").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
