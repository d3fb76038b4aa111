package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-keeper/internal/config"
	"github.com/MKhiriev/go-study-keeper/internal/logger"
)

// Repositories groups the server-side repositories into a single value that
// can be passed around the service layer.
type Repositories struct {
	UserRepository     UserRepository
	DocumentRepository DocumentRepository
}

// NewRepositories initialises the server storage layer: it connects to
// PostgreSQL using cfg.DB.DSN, runs pending schema migrations and wires the
// repositories to the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new repositories...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		DocumentRepository: NewDocumentRepository(db, logger),
	}, nil
}
