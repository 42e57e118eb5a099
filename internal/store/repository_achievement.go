package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/models"
)

// achievementRepository is the PostgreSQL-backed implementation of
// [AchievementRepository]. The "achievements" table is an append-only ledger
// keyed by (player_id, achievement_id); duplicates are absorbed by the
// primary key.
type achievementRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAchievementRepository constructs an [AchievementRepository] backed by
// the provided database connection and logger.
func NewAchievementRepository(db *DB, logger *logger.Logger) AchievementRepository {
	logger.Debug().Msg("creating achievement repository")
	return &achievementRepository{
		db:     db,
		logger: logger,
	}
}

// ListAchievements reads all achievements awarded to a player, oldest first.
func (r *achievementRepository) ListAchievements(ctx context.Context, playerID string) ([]models.Achievement, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAchievements, playerID)
	if err != nil {
		log.Err(err).Str("func", "*achievementRepository.ListAchievements").Msg("error executing achievements query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	achievements := make([]models.Achievement, 0)
	for rows.Next() {
		var achievement models.Achievement
		if err = rows.Scan(&achievement.PlayerID, &achievement.AchievementID, &achievement.AwardedAt); err != nil {
			log.Err(err).Str("func", "*achievementRepository.ListAchievements").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		achievements = append(achievements, achievement)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return achievements, nil
}

// AddAchievement appends an achievement to the ledger. The INSERT carries ON
// CONFLICT DO NOTHING, so a repeat award is not an error; the boolean return
// reports whether a row was actually inserted.
func (r *achievementRepository) AddAchievement(ctx context.Context, achievement models.Achievement) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, addAchievement, achievement.PlayerID, achievement.AchievementID)
	if err != nil {
		log.Err(err).Str("func", "*achievementRepository.AddAchievement").Msg("error executing achievement insert")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// WipeAchievements deletes every achievement of a player and returns the
// number of removed rows.
func (r *achievementRepository) WipeAchievements(ctx context.Context, playerID string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, wipeAchievements, playerID)
	if err != nil {
		log.Err(err).Str("func", "*achievementRepository.WipeAchievements").Msg("error executing achievements wipe")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
