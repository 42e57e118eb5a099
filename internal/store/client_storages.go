package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-score-board/internal/config"
	"github.com/MKhiriev/go-score-board/internal/logger"
	clientmigrations "github.com/MKhiriev/go-score-board/migrations/client"
)

// ClientStorages groups the client-side storage repositories into a single
// value passed around the client service layer.
type ClientStorages struct {
	// SessionRepository persists the (player id, username, token) triple
	// between client runs.
	SessionRepository SessionRepository
}

// NewClientStorages initialises the client storage layer: opens the SQLite
// database at cfg.DB.DSN (creating the file if needed), applies pending
// client migrations, and wires the repositories.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = clientmigrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
	}, nil
}
