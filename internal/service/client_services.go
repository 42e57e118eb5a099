package service

import (
	"github.com/MKhiriev/go-score-board/internal/adapter"
	"github.com/MKhiriev/go-score-board/internal/logger"
	"github.com/MKhiriev/go-score-board/internal/store"
)

// ClientServices groups the client-side services consumed by the terminal UI.
type ClientServices struct {
	AuthService ClientAuthService
	GameService ClientGameService
}

// NewClientServices wires the client service layer on top of the local
// session store and the server adapter.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(localStore, serverAdapter, logger),
		GameService: NewClientGameService(localStore, serverAdapter, logger),
	}
}
