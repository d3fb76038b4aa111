package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session LocalSession) error {
	log := logger.FromContext(ctx)

	if _, execErr := l.DB.ExecContext(ctx, saveLocalSession, session.UserID, session.Login, session.Token, session.SavedAt); execErr != nil {
		log.Err(execErr).
			Str("func", "localSessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to persist session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}

func (l *localSessionRepository) GetSession(ctx context.Context) (LocalSession, error) {
	log := logger.FromContext(ctx)

	var session LocalSession
	row := l.DB.QueryRowContext(ctx, getLocalSession)
	if scanErr := row.Scan(&session.UserID, &session.Login, &session.Token, &session.SavedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return LocalSession{}, ErrLocalSessionNotFound
		}

		log.Err(scanErr).
			Str("func", "localSessionRepository.GetSession").
			Msg("failed to scan session row")
		return LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return session, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, execErr := l.DB.ExecContext(ctx, clearLocalSession); execErr != nil {
		log.Err(execErr).
			Str("func", "localSessionRepository.ClearSession").
			Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}
