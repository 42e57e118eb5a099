// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/utils"
	"github.com/MKhiriev/go-score-board/models"
	"github.com/google/uuid"
)

// domainHandler is an authenticated operation. It runs strictly after the
// identity check and the token rotation; data is the raw `data` field of the
// request body. A non-nil error marks the operation as unsuccessful without
// touching the already-rotated token.
type domainHandler func(ctx context.Context, player models.Player, data json.RawMessage) (any, error)

// authenticated wraps a domain handler into the authenticated request
// pipeline:
//
//  1. decode the `{id, token, data?}` body and reject empty fields,
//  2. resolve the player account by the presented id,
//  3. verify the presented token against the stored one, without rotation
//     on mismatch,
//  4. atomically swap the token for a fresh one, so every accepted request
//     consumes its token exactly once,
//  5. run the domain handler and report its outcome alongside the fresh
//     token.
//
// Authentication failures respond with an auth-error envelope and HTTP 401;
// once rotation succeeded the response is HTTP 200 and always carries the
// fresh token, even when the domain handler failed.
func (h *Handler) authenticated(next domainHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		var request models.AuthRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Err(err).Msg("unparseable authenticated request body")
			utils.WriteJSON(w, models.NewAuthErrorEnvelope(reasonUUIDMissing), http.StatusUnauthorized)
			return
		}

		if request.ID == "" {
			utils.WriteJSON(w, models.NewAuthErrorEnvelope(reasonUUIDMissing), http.StatusUnauthorized)
			return
		}
		if request.Token == "" {
			utils.WriteJSON(w, models.NewAuthErrorEnvelope(reasonTokenMissing), http.StatusUnauthorized)
			return
		}

		if _, err := uuid.Parse(request.ID); err != nil {
			log.Error().Str("id", request.ID).Msg("malformed player id presented")
			utils.WriteJSON(w, models.NewAuthErrorEnvelope(reasonUUIDInvalid), http.StatusUnauthorized)
			return
		}

		player, err := h.services.AuthService.PlayerByID(ctx, request.ID)
		if err != nil {
			log.Err(err).Str("id", request.ID).Msg("presented id names no account")
			utils.WriteJSON(w, models.NewAuthErrorEnvelope(reasonUUIDInvalid), http.StatusUnauthorized)
			return
		}

		if !h.services.TokenService.Verify(player.Token, request.Token) {
			log.Error().Str("id", player.PlayerID).Msg("presented token does not match stored token")
			utils.WriteJSON(w, models.NewAuthErrorEnvelope(reasonTokenInvalid), http.StatusUnauthorized)
			return
		}

		// Single-use token: the presented token is consumed here, before the
		// operation runs. A concurrent request racing on the same token loses
		// the swap and is rejected.
		freshToken, err := h.services.TokenService.Rotate(ctx, player.PlayerID, request.Token)
		if err != nil {
			log.Err(err).Str("id", player.PlayerID).Msg("token rotation lost to a concurrent request")
			utils.WriteJSON(w, models.NewAuthErrorEnvelope(reasonTokenInvalid), http.StatusUnauthorized)
			return
		}

		data := request.Data
		if len(data) == 0 {
			data = json.RawMessage(`{}`)
		}

		result, err := next(ctx, player, data)
		if err != nil {
			log.Err(err).Str("id", player.PlayerID).Msg("authenticated operation failed")
			utils.WriteJSON(w, models.NewResultEnvelope(freshToken, false, nil), http.StatusOK)
			return
		}

		utils.WriteJSON(w, models.NewResultEnvelope(freshToken, true, result), http.StatusOK)
	}
}
