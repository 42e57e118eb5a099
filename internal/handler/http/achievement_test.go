package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-score-board/internal/service"
	"github.com/MKhiriev/go-score-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── award (domain half, behind the pipeline) ─────────────────────────────────

func TestAwardAchievement_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	data, err := json.Marshal(models.AwardRequest{AchievementID: "first_blood"})
	require.NoError(t, err)

	gomock.InOrder(
		env.auth.EXPECT().PlayerByID(gomock.Any(), testPlayerID).Return(authTestPlayer, nil),
		env.tokens.EXPECT().Verify(testStoredTok, testStoredTok).Return(true),
		env.tokens.EXPECT().Rotate(gomock.Any(), testPlayerID, testStoredTok).
			Return(testFreshTok, nil),
		env.achievements.EXPECT().Award(gomock.Any(), authTestPlayer, "first_blood").Return(nil),
	)

	rec, envelope := env.post(t, "/api/achievement/award",
		models.AuthRequest{ID: testPlayerID, Token: testStoredTok, Data: data})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, envelope.AuthError)
	require.NotNil(t, envelope.Successful)
	assert.True(t, *envelope.Successful)
}

func TestAwardAchievement_Duplicate_FailsAfterRotation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	data, err := json.Marshal(models.AwardRequest{AchievementID: "first_blood"})
	require.NoError(t, err)

	// a duplicate award is an operation failure, never an auth error: the
	// token still rotates and the fresh value is returned
	gomock.InOrder(
		env.auth.EXPECT().PlayerByID(gomock.Any(), testPlayerID).Return(authTestPlayer, nil),
		env.tokens.EXPECT().Verify(testStoredTok, testStoredTok).Return(true),
		env.tokens.EXPECT().Rotate(gomock.Any(), testPlayerID, testStoredTok).
			Return(testFreshTok, nil),
		env.achievements.EXPECT().Award(gomock.Any(), authTestPlayer, "first_blood").
			Return(service.ErrAlreadyAwarded),
	)

	rec, envelope := env.post(t, "/api/achievement/award",
		models.AuthRequest{ID: testPlayerID, Token: testStoredTok, Data: data})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, envelope.AuthError)
	assert.Equal(t, testFreshTok, envelope.AccessToken)
	require.NotNil(t, envelope.Successful)
	assert.False(t, *envelope.Successful)
}

// ── list ─────────────────────────────────────────────────────────────────────

func TestListAchievements_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	achievements := []models.Achievement{
		{PlayerID: testPlayerID, AchievementID: "first_blood"},
		{PlayerID: testPlayerID, AchievementID: "untouchable"},
	}
	env.achievements.EXPECT().List(gomock.Any(), testPlayerID).Return(achievements, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/achievement/list?id="+testPlayerID, nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// The owner is identified by the query parameter; the wire shape
	// carries only the achievement id and award time.
	want := []models.Achievement{
		{AchievementID: "first_blood"},
		{AchievementID: "untouchable"},
	}

	var got []models.Achievement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
	assert.NotContains(t, rec.Body.String(), testPlayerID, "player id must not leak into the list body")
}

func TestListAchievements_MissingID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: the request is rejected before any service call
	env := newTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/achievement/list", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
