package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-score-board/internal/config"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/store"
	"github.com/MKhiriev/go-score-board/models"
)

var achievementIDPattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// achievementService is the concrete implementation of AchievementService.
//
// The ledger is dedup-append: awarding the same achievement twice fails the
// operation without changing the set. One configurable account is cursed:
// when it earns an achievement, its entire set is wiped instead.
type achievementService struct {
	// achievementRepository is the data-access layer for the ledger.
	achievementRepository store.AchievementRepository

	// cursedPlayer is the username whose awards wipe the set instead of
	// appending. Empty disables the behaviour.
	cursedPlayer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAchievementService constructs an AchievementService wired to the given
// AchievementRepository, with the cursed account name taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAchievementService(achievementRepository store.AchievementRepository, cfg config.App, logger *logger.Logger) AchievementService {
	return &achievementService{
		achievementRepository: achievementRepository,
		cursedPlayer:          cfg.CursedPlayer,
		logger:                logger,
	}
}

// Award records an achievement for the player.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided if the achievement id fails validation.
//   - ErrAlreadyAwarded if the player already holds the achievement.
//
// When the player is the configured cursed account, the award wipes the
// player's entire achievement set instead of appending to it.
func (a *achievementService) Award(ctx context.Context, player models.Player, achievementID string) error {
	log := logger.FromContext(ctx)

	if !achievementIDPattern.MatchString(achievementID) {
		log.Error().Str("achievementId", achievementID).Msg("invalid achievement id provided")
		return ErrInvalidDataProvided
	}

	if a.cursedPlayer != "" && player.Username == a.cursedPlayer {
		wiped, err := a.achievementRepository.WipeAchievements(ctx, player.PlayerID)
		if err != nil {
			log.Err(err).Str("id", player.PlayerID).Msg("achievement wipe failed")
			return fmt.Errorf("achievement wipe failed: %w", err)
		}
		log.Info().Str("id", player.PlayerID).Int64("wiped", wiped).Msg("cursed player awarded: set wiped")
		return nil
	}

	inserted, err := a.achievementRepository.AddAchievement(ctx, models.Achievement{
		PlayerID:      player.PlayerID,
		AchievementID: achievementID,
	})
	if err != nil {
		log.Err(err).Str("id", player.PlayerID).Msg("achievement insert failed")
		return fmt.Errorf("achievement insert failed: %w", err)
	}
	if !inserted {
		return ErrAlreadyAwarded
	}

	return nil
}

// List reads all achievements of a player, oldest first.
func (a *achievementService) List(ctx context.Context, playerID string) ([]models.Achievement, error) {
	log := logger.FromContext(ctx)

	if playerID == "" {
		return nil, ErrInvalidDataProvided
	}

	achievements, err := a.achievementRepository.ListAchievements(ctx, playerID)
	if err != nil {
		log.Err(err).Str("id", playerID).Msg("achievements read failed")
		return nil, fmt.Errorf("achievements read failed: %w", err)
	}

	return achievements, nil
}
