package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-score-board/internal/adapter"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/store"
	"github.com/MKhiriev/go-score-board/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService] on top of the local
// session store and the server adapter.
func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, username string, password string) (models.Session, error) {
	session, err := a.adapter.Register(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}

	if err = a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session after register: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Login(ctx context.Context, username string, password string) (models.Session, error) {
	session, err := a.adapter.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}

	if err = a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session after login: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Available(ctx context.Context, username string) (bool, error) {
	return a.adapter.Available(ctx, username)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	a.adapter.SetSession(session)

	return session, nil
}

// Logout invalidates the server-side token through the authenticated logout
// exchange and drops the local session. The local state is removed even when
// the server rejects the call: a token the server no longer accepts is not
// worth keeping.
func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil && !errors.Is(err, adapter.ErrNotAuthenticated) {
		a.logger.Warn().Err(err).Msg("server logout failed, dropping local session anyway")
	}

	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete local session: %w", err)
	}

	a.adapter.SetSession(models.Session{})

	return nil
}
