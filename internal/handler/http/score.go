package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/utils"
	"github.com/MKhiriev/go-score-board/models"
)

// submitScore is the domain half of POST /api/score/submit. Identity and
// token rotation already happened in the pipeline.
func (h *Handler) submitScore(ctx context.Context, player models.Player, data json.RawMessage) (any, error) {
	var submission models.ScoreSubmission
	if err := json.Unmarshal(data, &submission); err != nil {
		return nil, err
	}

	if err := h.services.ScoreService.SubmitScore(ctx, player, submission); err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *Handler) topScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	mode := models.GameMode(query.Get("mode"))
	timeframe := models.Timeframe(query.Get("timeframe"))

	var limit int
	if rawLimit := query.Get("limit"); rawLimit != "" {
		parsedLimit, err := strconv.Atoi(rawLimit)
		if err != nil {
			log.Error().Str("limit", rawLimit).Msg("non-numeric limit provided")
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	entries, err := h.services.ScoreService.TopScores(ctx, mode, timeframe, limit)
	if err != nil {
		log.Err(err).Str("mode", mode.String()).Msg("leaderboard read failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) playerScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PlayerScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if request.ID == "" {
		http.Error(w, "player id is required", http.StatusBadRequest)
		return
	}

	records, err := h.services.ScoreService.PlayerScores(ctx, request.ID, request.Mode)
	if err != nil {
		log.Err(err).Str("id", request.ID).Msg("player scores read failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
