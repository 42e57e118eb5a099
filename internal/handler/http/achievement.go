package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/utils"
	"github.com/MKhiriev/go-score-board/models"
)

// awardAchievement is the domain half of POST /api/achievement/award.
// A duplicate award surfaces as an unsuccessful operation, not an auth error.
func (h *Handler) awardAchievement(ctx context.Context, player models.Player, data json.RawMessage) (any, error) {
	var request models.AwardRequest
	if err := json.Unmarshal(data, &request); err != nil {
		return nil, err
	}

	if err := h.services.AchievementService.Award(ctx, player, request.AchievementID); err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *Handler) listAchievements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	playerID := r.URL.Query().Get("id")
	if playerID == "" {
		http.Error(w, "player id is required", http.StatusBadRequest)
		return
	}

	achievements, err := h.services.AchievementService.List(ctx, playerID)
	if err != nil {
		log.Err(err).Str("id", playerID).Msg("achievements read failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, achievements, http.StatusOK)
}
