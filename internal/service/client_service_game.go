package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-score-board/internal/adapter"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/store"
	"github.com/MKhiriev/go-score-board/models"
)

type clientGameService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

// NewClientGameService constructs a [ClientGameService] on top of the local
// session store and the server adapter.
func NewClientGameService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientGameService {
	return &clientGameService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (g *clientGameService) Leaderboard(ctx context.Context, mode models.GameMode, timeframe models.Timeframe, limit int) ([]models.LeaderboardEntry, error) {
	return g.adapter.TopScores(ctx, mode, timeframe, limit)
}

// SubmitScore sends one score update attempt. The access token rotates on
// every authenticated exchange, a rejected submission included, so the fresh
// session is persisted before the operation outcome is reported.
func (g *clientGameService) SubmitScore(ctx context.Context, submission models.ScoreSubmission) error {
	err := g.adapter.SubmitScore(ctx, submission)
	g.persistRotatedSession(ctx, err)
	return err
}

func (g *clientGameService) MyScores(ctx context.Context, mode models.GameMode) ([]models.ScoreRecord, error) {
	return g.adapter.PlayerScores(ctx, mode)
}

func (g *clientGameService) Achievements(ctx context.Context) ([]models.Achievement, error) {
	return g.adapter.Achievements(ctx)
}

// Award grants an achievement. Like SubmitScore, the rotated session is
// persisted even when the award is a rejected duplicate.
func (g *clientGameService) Award(ctx context.Context, achievementID string) error {
	err := g.adapter.Award(ctx, achievementID)
	g.persistRotatedSession(ctx, err)
	return err
}

func (g *clientGameService) ServerVersion(ctx context.Context) (string, error) {
	return g.adapter.ServerVersion(ctx)
}

// persistRotatedSession saves the adapter's session after an authenticated
// exchange that passed the identity layer. On [adapter.ErrUnauthorized] and
// [adapter.ErrNotAuthenticated] nothing rotated, so nothing is written.
func (g *clientGameService) persistRotatedSession(ctx context.Context, callErr error) {
	if callErr != nil && !errors.Is(callErr, adapter.ErrOperationRejected) {
		return
	}

	if err := g.localStore.SessionRepository.SaveSession(ctx, g.adapter.Session()); err != nil {
		g.logger.Warn().Err(err).Msg("failed to persist rotated session")
	}
}
