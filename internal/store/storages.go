package store

import "github.com/MKhiriev/go-score-board/internal/logger"

// Storages bundles all server-side repositories behind one injection point.
type Storages struct {
	PlayerRepository      PlayerRepository
	ScoreRepository       ScoreRepository
	AchievementRepository AchievementRepository
}

// NewStorages constructs all repositories over the shared database handle.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		PlayerRepository:      NewPlayerRepository(db, log),
		ScoreRepository:       NewScoreRepository(db, log),
		AchievementRepository: NewAchievementRepository(db, log),
	}
}
