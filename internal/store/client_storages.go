package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-keeper/internal/config"
	"github.com/MKhiriev/go-study-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// DocumentRepository is the SQLite-backed repository mirroring the cloud
	// document shape on the device.
	DocumentRepository LocalDocumentRepository

	// SessionRepository persists sign-in state across restarts.
	SessionRepository LocalSessionRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens an SQLite connection to the file path
// specified in cfg.LocalDBPath (creating the database file and schema if
// needed) and wires the repositories to the shared connection.
func NewClientStorages(cfg config.Client, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.LocalDBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		DocumentRepository: NewLocalDocumentRepository(db, logger),
		SessionRepository:  NewLocalSessionRepository(db, logger),
	}, nil
}
