package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/utils"
	"github.com/MKhiriev/go-score-board/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredPlayer, err := h.services.AuthService.Register(ctx, credentials.Username, credentials.Password)
	if err != nil {
		h.writeCredentialsFailure(w, r, err, "player registration failed")
		return
	}

	log.Debug().Str("id", registeredPlayer.PlayerID).Str("username", registeredPlayer.Username).
		Msg("player successfully registered")

	utils.WriteJSON(w, models.CredentialsResponse{
		Successful:  true,
		UUID:        registeredPlayer.PlayerID,
		AccessToken: registeredPlayer.Token,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundPlayer, err := h.services.AuthService.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		h.writeCredentialsFailure(w, r, err, "player login failed")
		return
	}

	log.Debug().Str("id", foundPlayer.PlayerID).Str("username", foundPlayer.Username).
		Msg("player successfully logged in")

	utils.WriteJSON(w, models.CredentialsResponse{
		Successful:  true,
		UUID:        foundPlayer.PlayerID,
		AccessToken: foundPlayer.Token,
	}, http.StatusOK)
}

func (h *Handler) available(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AvailableRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	available, err := h.services.AuthService.Available(ctx, request.Username)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during availability check")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AvailableResponse{Available: available}, http.StatusOK)
}

// logout is the authenticated no-op: the pipeline already rotated the token,
// which is the entire effect. The client discards the returned fresh token.
func (h *Handler) logout(_ context.Context, _ models.Player, _ json.RawMessage) (any, error) {
	return nil, nil
}

// writeCredentialsFailure answers a failed register/login attempt. Known
// domain rejections keep HTTP 200 with a wire reason; everything else is an
// opaque 500.
func (h *Handler) writeCredentialsFailure(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)

	reason := credentialsReason(err)
	if reason == "" {
		log.Err(err).Msg("unexpected error occurred during " + msg)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Err(err).Msg(msg)
	utils.WriteJSON(w, models.CredentialsResponse{Successful: false, Reason: reason}, http.StatusOK)
}
