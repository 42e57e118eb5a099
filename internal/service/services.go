package service

import (
	"github.com/MKhiriev/go-score-board/internal/config"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/store"
)

// Services bundles all server-side services behind one injection point.
type Services struct {
	TokenService       TokenService
	AuthService        AuthService
	ScoreService       ScoreService
	AchievementService AchievementService
	AppInfoService     AppInfoService
}

// NewServices constructs the full service graph over the given repositories.
func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tokenService := NewTokenService(storages.PlayerRepository, logger)

	return &Services{
		TokenService:       tokenService,
		AuthService:        NewAuthService(storages.PlayerRepository, tokenService, cfg.App, logger),
		ScoreService:       NewScoreService(storages.ScoreRepository, logger),
		AchievementService: NewAchievementService(storages.AchievementRepository, cfg.App, logger),
		AppInfoService:     appInfoService,
	}, nil
}
