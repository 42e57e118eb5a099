package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-score-board/internal/config"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/mock"
	"github.com/MKhiriev/go-score-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAchievementSvc(t *testing.T, ctrl *gomock.Controller, cursedPlayer string) (*achievementService, *mock.MockAchievementRepository) {
	t.Helper()
	mockAchievements := mock.NewMockAchievementRepository(ctrl)
	svc := NewAchievementService(mockAchievements, config.App{CursedPlayer: cursedPlayer}, logger.Nop()).(*achievementService)
	return svc, mockAchievements
}

// ── Award ────────────────────────────────────────────────────────────────────

func TestAchievementService_Award_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAchievements := newTestAchievementSvc(t, ctrl, "")
	ctx := context.Background()

	mockAchievements.EXPECT().
		AddAchievement(ctx, models.Achievement{PlayerID: "player-1", AchievementID: "first_blood"}).
		Return(true, nil)

	err := svc.Award(ctx, testPlayer, "first_blood")
	require.NoError(t, err)
}

func TestAchievementService_Award_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAchievements := newTestAchievementSvc(t, ctrl, "")
	ctx := context.Background()

	mockAchievements.EXPECT().
		AddAchievement(ctx, gomock.Any()).
		Return(false, nil)

	err := svc.Award(ctx, testPlayer, "first_blood")
	require.ErrorIs(t, err, ErrAlreadyAwarded)
}

func TestAchievementService_Award_InvalidID_NoStorageCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: an invalid id must never reach the repository
	svc, _ := newTestAchievementSvc(t, ctrl, "")
	ctx := context.Background()

	tests := []string{"", "First_Blood", "with space", "dash-ed"}
	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			err := svc.Award(ctx, testPlayer, id)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAchievementService_Award_CursedPlayerWipes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAchievements := newTestAchievementSvc(t, ctrl, "john_doe")
	ctx := context.Background()

	// the cursed account's award wipes the set instead of appending
	mockAchievements.EXPECT().
		WipeAchievements(ctx, "player-1").
		Return(int64(4), nil)

	err := svc.Award(ctx, testPlayer, "first_blood")
	require.NoError(t, err)
}

func TestAchievementService_Award_CursedDisabledByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// empty CursedPlayer config: normal append path even for matching names
	svc, mockAchievements := newTestAchievementSvc(t, ctrl, "")
	ctx := context.Background()

	mockAchievements.EXPECT().
		AddAchievement(ctx, gomock.Any()).
		Return(true, nil)

	err := svc.Award(ctx, testPlayer, "first_blood")
	require.NoError(t, err)
}

func TestAchievementService_Award_OtherPlayersUnaffectedByCurse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAchievements := newTestAchievementSvc(t, ctrl, "someone_else")
	ctx := context.Background()

	mockAchievements.EXPECT().
		AddAchievement(ctx, gomock.Any()).
		Return(true, nil)

	err := svc.Award(ctx, testPlayer, "first_blood")
	require.NoError(t, err)
}

func TestAchievementService_Award_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAchievements := newTestAchievementSvc(t, ctrl, "")
	ctx := context.Background()

	mockAchievements.EXPECT().
		AddAchievement(ctx, gomock.Any()).
		Return(false, errors.New("db down"))

	err := svc.Award(ctx, testPlayer, "first_blood")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "achievement insert failed")
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestAchievementService_List_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAchievements := newTestAchievementSvc(t, ctrl, "")
	ctx := context.Background()

	expected := []models.Achievement{
		{PlayerID: "player-1", AchievementID: "first_blood"},
		{PlayerID: "player-1", AchievementID: "untouchable"},
	}
	mockAchievements.EXPECT().ListAchievements(ctx, "player-1").Return(expected, nil)

	achievements, err := svc.List(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, expected, achievements)
}

func TestAchievementService_List_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAchievementSvc(t, ctrl, "")

	_, err := svc.List(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
