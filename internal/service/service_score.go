package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/store"
	"github.com/MKhiriev/go-score-board/models"
)

const (
	// defaultLeaderboardLimit is used when the caller asks for zero or a
	// negative number of rows.
	defaultLeaderboardLimit = 10

	// maxLeaderboardLimit caps a single leaderboard read.
	maxLeaderboardLimit = 100
)

// scoreService is the concrete implementation of ScoreService.
//
// Scores advance strictly one point at a time: the first submission for a
// (player, mode) pair must be 0 or 1, every later one exactly one above the
// stored value. A submitted score that repeats, skips ahead, or falls behind
// is rejected without touching storage. The write itself is conditional on
// the value the service verified against, so two concurrent submissions of
// the same step cannot both land.
type scoreService struct {
	// scoreRepository is the data-access layer for score records.
	scoreRepository store.ScoreRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewScoreService constructs a ScoreService wired to the given
// ScoreRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewScoreService(scoreRepository store.ScoreRepository, logger *logger.Logger) ScoreService {
	return &scoreService{
		scoreRepository: scoreRepository,
		logger:          logger,
	}
}

// SubmitScore validates and persists one score submission for the player.
//
// Returns nil on success or:
//   - ErrUnknownMode if the mode is outside the closed enum.
//   - ErrScoreOutOfRange if score or deathCount is outside its bounds.
//   - ErrScoreSequence if the submission breaks the monotonic contract.
//   - store.ErrScoreConflict (wrapped) if a concurrent submission won the
//     conditional write race.
func (s *scoreService) SubmitScore(ctx context.Context, player models.Player, submission models.ScoreSubmission) error {
	log := logger.FromContext(ctx)

	if !submission.Mode.Valid() {
		log.Error().Str("mode", submission.Mode.String()).Msg("unknown game mode submitted")
		return ErrUnknownMode
	}
	if submission.Score < 0 || submission.Score > models.MaxScore || submission.Deaths < 0 {
		log.Error().Int("score", submission.Score).Int("deaths", submission.Deaths).Msg("submission out of range")
		return ErrScoreOutOfRange
	}

	current, err := s.scoreRepository.GetScore(ctx, player.PlayerID, submission.Mode)
	if err != nil {
		if errors.Is(err, store.ErrScoreNotFound) {
			return s.submitFirst(ctx, player, submission)
		}
		log.Err(err).Str("id", player.PlayerID).Msg("score lookup failed")
		return fmt.Errorf("score lookup failed: %w", err)
	}

	if submission.Score != current.Score+1 {
		log.Error().
			Int("submitted", submission.Score).
			Int("stored", current.Score).
			Msg("submission breaks monotonic sequence")
		return ErrScoreSequence
	}

	record := models.ScoreRecord{
		PlayerID: player.PlayerID,
		Mode:     submission.Mode,
		Score:    submission.Score,
		Deaths:   submission.Deaths,
	}
	if err = s.scoreRepository.UpdateScore(ctx, record, current.Score); err != nil {
		log.Err(err).Str("id", player.PlayerID).Msg("score update failed")
		return fmt.Errorf("score update failed: %w", err)
	}

	return nil
}

// submitFirst handles the first submission for a (player, mode) pair, which
// may open the sequence at 0 or 1.
func (s *scoreService) submitFirst(ctx context.Context, player models.Player, submission models.ScoreSubmission) error {
	log := logger.FromContext(ctx)

	if submission.Score != 0 && submission.Score != 1 {
		log.Error().Int("submitted", submission.Score).Msg("first submission must open at 0 or 1")
		return ErrScoreSequence
	}

	record := models.ScoreRecord{
		PlayerID: player.PlayerID,
		Mode:     submission.Mode,
		Score:    submission.Score,
		Deaths:   submission.Deaths,
	}
	if err := s.scoreRepository.InsertScore(ctx, record); err != nil {
		log.Err(err).Str("id", player.PlayerID).Msg("score insert failed")
		return fmt.Errorf("score insert failed: %w", err)
	}

	return nil
}

// TopScores reads the leaderboard for a mode and timeframe.
//
// An unknown mode yields an empty slice and no storage call; an unknown
// timeframe falls back to all-time. The limit is clamped to
// [1, maxLeaderboardLimit], defaulting to defaultLeaderboardLimit.
func (s *scoreService) TopScores(ctx context.Context, mode models.GameMode, timeframe models.Timeframe, limit int) ([]models.LeaderboardEntry, error) {
	if !mode.Valid() {
		return []models.LeaderboardEntry{}, nil
	}
	if !timeframe.Valid() {
		timeframe = models.TimeframeAll
	}

	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := s.scoreRepository.ListTopScores(ctx, mode, timeframe, uint64(limit))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("mode", mode.String()).Msg("leaderboard read failed")
		return nil, fmt.Errorf("leaderboard read failed: %w", err)
	}

	return entries, nil
}

// PlayerScores reads the score records of one player. When mode is non-empty
// and valid the result is filtered to that mode.
func (s *scoreService) PlayerScores(ctx context.Context, playerID string, mode models.GameMode) ([]models.ScoreRecord, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return nil, ErrInvalidDataProvided
	}

	records, err := s.scoreRepository.ListPlayerScores(ctx, playerID)
	if err != nil {
		log.Err(err).Str("id", playerID).Msg("player scores read failed")
		return nil, fmt.Errorf("player scores read failed: %w", err)
	}

	if mode == "" {
		return records, nil
	}
	if !mode.Valid() {
		return []models.ScoreRecord{}, nil
	}

	filtered := make([]models.ScoreRecord, 0, len(records))
	for _, record := range records {
		if record.Mode == mode {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}
