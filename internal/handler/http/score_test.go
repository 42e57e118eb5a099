package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-score-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── submit (domain half, behind the pipeline) ────────────────────────────────

func TestSubmitScore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	submission := models.ScoreSubmission{Mode: models.ModeHard, Score: 1, Deaths: 3}
	data, err := json.Marshal(submission)
	require.NoError(t, err)

	gomock.InOrder(
		env.auth.EXPECT().PlayerByID(gomock.Any(), testPlayerID).Return(authTestPlayer, nil),
		env.tokens.EXPECT().Verify(testStoredTok, testStoredTok).Return(true),
		env.tokens.EXPECT().Rotate(gomock.Any(), testPlayerID, testStoredTok).
			Return(testFreshTok, nil),
		env.scores.EXPECT().SubmitScore(gomock.Any(), authTestPlayer, submission).Return(nil),
	)

	rec, envelope := env.post(t, "/api/score/submit",
		models.AuthRequest{ID: testPlayerID, Token: testStoredTok, Data: data})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, envelope.AuthError)
	assert.Equal(t, testFreshTok, envelope.AccessToken)
	require.NotNil(t, envelope.Successful)
	assert.True(t, *envelope.Successful)
}

// ── top scores ───────────────────────────────────────────────────────────────

func TestTopScores_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	updatedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.LeaderboardEntry{
		{Rank: 1, Username: "john_doe", Score: 42, Deaths: 3, UpdatedAt: updatedAt},
		{Rank: 2, Username: "jane_doe", Score: 41, Deaths: 0, UpdatedAt: updatedAt},
	}
	env.scores.EXPECT().
		TopScores(gomock.Any(), models.ModeNormal, models.TimeframeDaily, 25).
		Return(entries, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/score/top?mode=normal&timeframe=daily&limit=25", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.LeaderboardEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, entries, got)
}

func TestTopScores_DefaultsWithoutParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	// missing query params pass through as zero values; the service layer
	// decides defaults and rejections
	env.scores.EXPECT().
		TopScores(gomock.Any(), models.GameMode(""), models.Timeframe(""), 0).
		Return([]models.LeaderboardEntry{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/score/top", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestTopScores_NonNumericLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: the request is rejected before any service call
	env := newTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/score/top?limit=lots", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTopScores_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	env.scores.EXPECT().
		TopScores(gomock.Any(), models.ModeEasy, models.Timeframe(""), 0).
		Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/score/top?mode=easy", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── player scores ────────────────────────────────────────────────────────────

func TestPlayerScores_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	records := []models.ScoreRecord{
		{PlayerID: testPlayerID, Mode: models.ModeEasy, Score: 7},
		{PlayerID: testPlayerID, Mode: models.ModeHard, Score: 2},
	}
	env.scores.EXPECT().
		PlayerScores(gomock.Any(), testPlayerID, models.GameMode("")).
		Return(records, nil)

	raw, _ := json.Marshal(models.PlayerScoresRequest{ID: testPlayerID})
	req := httptest.NewRequest(http.MethodPost, "/api/score/player", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.ScoreRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, records, got)
}

func TestPlayerScores_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	raw, _ := json.Marshal(models.PlayerScoresRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/score/player", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
