// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/store"
)

// tokenBytes is the entropy of an access token; hex encoding doubles it to
// a 48-character string.
const tokenBytes = 24

// tokenService is the concrete implementation of TokenService.
//
// Tokens are opaque random strings stored alongside the player row. A player
// holds exactly one valid token at a time: every authenticated request swaps
// it for a fresh one, so a captured token is worthless once the legitimate
// client has made its next request.
type tokenService struct {
	// playerRepository persists the current token per player.
	playerRepository store.PlayerRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewTokenService constructs a TokenService wired to the given
// PlayerRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewTokenService(playerRepository store.PlayerRepository, logger *logger.Logger) TokenService {
	return &tokenService{
		playerRepository: playerRepository,
		logger:           logger,
	}
}

// Generate returns a fresh access token: 24 bytes from crypto/rand,
// hex-encoded to 48 characters. It does not touch storage.
func (t *tokenService) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// Issue generates a fresh token and stores it unconditionally for the player.
// Used on registration and login, which always invalidate whatever token was
// stored before.
func (t *tokenService) Issue(ctx context.Context, playerID string) (string, error) {
	log := logger.FromContext(ctx)

	token, err := t.Generate()
	if err != nil {
		log.Err(err).Str("func", "*tokenService.Issue").Msg("token generation failed")
		return "", err
	}

	if err = t.playerRepository.SetToken(ctx, playerID, token); err != nil {
		log.Err(err).Str("func", "*tokenService.Issue").Msg("token store failed")
		return "", fmt.Errorf("token store failed: %w", err)
	}

	return token, nil
}

// Rotate generates a fresh token and swaps it for the presented one in a
// single conditional UPDATE. The swap and the validity check are one atomic
// operation: two concurrent requests presenting the same token cannot both
// succeed, the loser gets store.ErrTokenMismatch.
func (t *tokenService) Rotate(ctx context.Context, playerID string, presented string) (string, error) {
	log := logger.FromContext(ctx)

	token, err := t.Generate()
	if err != nil {
		log.Err(err).Str("func", "*tokenService.Rotate").Msg("token generation failed")
		return "", err
	}

	if err = t.playerRepository.SwapToken(ctx, playerID, presented, token); err != nil {
		log.Err(err).Str("func", "*tokenService.Rotate").Msg("token swap failed")
		return "", fmt.Errorf("token swap failed: %w", err)
	}

	return token, nil
}

// Verify reports whether presented equals stored, in constant time. Length
// is checked first; ConstantTimeCompare of equal-length inputs leaks nothing
// about where they differ.
func (t *tokenService) Verify(stored string, presented string) bool {
	if len(stored) != len(presented) || stored == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
