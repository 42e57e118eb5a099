package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-score-board/internal/adapter"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/mock"
	"github.com/MKhiriev/go-score-board/internal/store"
	"github.com/MKhiriev/go-score-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newClientGameEnv(t *testing.T) (ClientGameService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	serverAdapter := mock.NewMockServerAdapter(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	localStore := &store.ClientStorages{SessionRepository: sessions}

	return NewClientGameService(localStore, serverAdapter, logger.Nop()), serverAdapter, sessions
}

func rotatedSession() models.Session {
	s := clientTestSession()
	s.Token = "rotatedtoken"
	return s
}

// ── SubmitScore ─────────────────────────────────────────────────────────────

func TestClientSubmitScore_PersistsRotatedSession(t *testing.T) {
	svc, serverAdapter, sessions := newClientGameEnv(t)
	ctx := context.Background()
	submission := models.ScoreSubmission{Mode: models.ModeNormal, Score: 1}

	serverAdapter.EXPECT().SubmitScore(ctx, submission).Return(nil)
	serverAdapter.EXPECT().Session().Return(rotatedSession())
	sessions.EXPECT().SaveSession(ctx, rotatedSession()).Return(nil)

	require.NoError(t, svc.SubmitScore(ctx, submission))
}

func TestClientSubmitScore_RejectedStillPersists(t *testing.T) {
	svc, serverAdapter, sessions := newClientGameEnv(t)
	ctx := context.Background()
	submission := models.ScoreSubmission{Mode: models.ModeNormal, Score: 5}

	serverAdapter.EXPECT().SubmitScore(ctx, submission).Return(adapter.ErrOperationRejected)
	serverAdapter.EXPECT().Session().Return(rotatedSession())
	sessions.EXPECT().SaveSession(ctx, rotatedSession()).Return(nil)

	err := svc.SubmitScore(ctx, submission)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrOperationRejected)
}

func TestClientSubmitScore_UnauthorizedDoesNotPersist(t *testing.T) {
	svc, serverAdapter, _ := newClientGameEnv(t)
	ctx := context.Background()
	submission := models.ScoreSubmission{Mode: models.ModeNormal, Score: 1}

	serverAdapter.EXPECT().SubmitScore(ctx, submission).Return(adapter.ErrUnauthorized)

	err := svc.SubmitScore(ctx, submission)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ── Award ───────────────────────────────────────────────────────────────────

func TestClientAward_DuplicatePersistsRotatedSession(t *testing.T) {
	svc, serverAdapter, sessions := newClientGameEnv(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Award(ctx, "first_blood").Return(adapter.ErrOperationRejected)
	serverAdapter.EXPECT().Session().Return(rotatedSession())
	sessions.EXPECT().SaveSession(ctx, rotatedSession()).Return(nil)

	err := svc.Award(ctx, "first_blood")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrOperationRejected)
}

// ── Reads ───────────────────────────────────────────────────────────────────

func TestClientLeaderboard_Passthrough(t *testing.T) {
	svc, serverAdapter, _ := newClientGameEnv(t)
	ctx := context.Background()
	want := []models.LeaderboardEntry{{Rank: 1, Username: "alice", Score: 42}}

	serverAdapter.EXPECT().
		TopScores(ctx, models.ModeNormal, models.TimeframeAll, 10).
		Return(want, nil)

	entries, err := svc.Leaderboard(ctx, models.ModeNormal, models.TimeframeAll, 10)

	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestClientMyScores_Passthrough(t *testing.T) {
	svc, serverAdapter, _ := newClientGameEnv(t)
	ctx := context.Background()
	want := []models.ScoreRecord{{Mode: models.ModeHard, Score: 7}}

	serverAdapter.EXPECT().PlayerScores(ctx, models.ModeHard).Return(want, nil)

	records, err := svc.MyScores(ctx, models.ModeHard)

	require.NoError(t, err)
	assert.Equal(t, want, records)
}

func TestClientAchievements_Passthrough(t *testing.T) {
	svc, serverAdapter, _ := newClientGameEnv(t)
	ctx := context.Background()
	want := []models.Achievement{{AchievementID: "first_blood"}}

	serverAdapter.EXPECT().Achievements(ctx).Return(want, nil)

	achievements, err := svc.Achievements(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, achievements)
}

func TestClientServerVersion_Passthrough(t *testing.T) {
	svc, serverAdapter, _ := newClientGameEnv(t)
	ctx := context.Background()

	serverAdapter.EXPECT().ServerVersion(ctx).Return("1.2.3", nil)

	version, err := svc.ServerVersion(ctx)

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}
