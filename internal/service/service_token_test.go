package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/mock"
	"github.com/MKhiriev/go-score-board/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTokenSvc(t *testing.T, ctrl *gomock.Controller) (*tokenService, *mock.MockPlayerRepository) {
	t.Helper()
	mockPlayers := mock.NewMockPlayerRepository(ctrl)
	svc := NewTokenService(mockPlayers, logger.Nop()).(*tokenService)
	return svc, mockPlayers
}

// ── Generate ─────────────────────────────────────────────────────────────────

func TestTokenService_Generate_Shape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTokenSvc(t, ctrl)

	token, err := svc.Generate()
	require.NoError(t, err)

	assert.Len(t, token, tokenBytes*2)

	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token must be valid hex")
}

func TestTokenService_Generate_Unique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTokenSvc(t, ctrl)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := svc.Generate()
		require.NoError(t, err)
		require.False(t, seen[token], "generated token repeated")
		seen[token] = true
	}
}

// ── Issue ────────────────────────────────────────────────────────────────────

func TestTokenService_Issue_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPlayers := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	var stored string
	mockPlayers.EXPECT().SetToken(ctx, "player-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, token string) error {
			stored = token
			return nil
		},
	)

	token, err := svc.Issue(ctx, "player-1")
	require.NoError(t, err)
	assert.Equal(t, stored, token, "returned token must be the stored one")
	assert.Len(t, token, tokenBytes*2)
}

func TestTokenService_Issue_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPlayers := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	mockPlayers.EXPECT().SetToken(ctx, "player-1", gomock.Any()).
		Return(errors.New("db down"))

	_, err := svc.Issue(ctx, "player-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token store failed")
}

// ── Rotate ───────────────────────────────────────────────────────────────────

func TestTokenService_Rotate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPlayers := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	presented := "old-token"
	var swappedTo string
	mockPlayers.EXPECT().SwapToken(ctx, "player-1", presented, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ string, newToken string) error {
			swappedTo = newToken
			return nil
		},
	)

	token, err := svc.Rotate(ctx, "player-1", presented)
	require.NoError(t, err)
	assert.Equal(t, swappedTo, token)
	assert.NotEqual(t, presented, token)
}

func TestTokenService_Rotate_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPlayers := newTestTokenSvc(t, ctrl)
	ctx := context.Background()

	// Concurrent request already swapped the stored token.
	mockPlayers.EXPECT().SwapToken(ctx, "player-1", "stale-token", gomock.Any()).
		Return(store.ErrTokenMismatch)

	_, err := svc.Rotate(ctx, "player-1", "stale-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrTokenMismatch)
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestTokenService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestTokenSvc(t, ctrl)

	tests := []struct {
		name      string
		stored    string
		presented string
		want      bool
	}{
		{"match", "aabbcc", "aabbcc", true},
		{"mismatch same length", "aabbcc", "aabbcd", false},
		{"different length", "aabbcc", "aabb", false},
		{"both empty", "", "", false},
		{"stored empty", "", "aabbcc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Verify(tt.stored, tt.presented))
		})
	}
}
