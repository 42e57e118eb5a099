package store

import (
	"context"

	"github.com/MKhiriev/go-score-board/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository is the client-side local store for the authentication
// session. At most one session is persisted at a time; saving replaces the
// previous one.
type SessionRepository interface {
	// SaveSession stores session as the current one, replacing any
	// previously saved session.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the persisted session or ErrLocalSessionNotFound
	// when none is stored.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the persisted session. Deleting an absent
	// session is not an error.
	DeleteSession(ctx context.Context) error
}
