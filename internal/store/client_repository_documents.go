package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/models"
)

type localDocumentRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalDocumentRepository(db *DB, logger *logger.Logger) LocalDocumentRepository {
	return &localDocumentRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localDocumentRepository) GetCollection(ctx context.Context, collection string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := l.DB.QueryContext(ctx, getLocalCollection, collection)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "localDocumentRepository.GetCollection").
			Str("collection", collection).
			Msg("failed to execute query for local collection")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.Document, 0, 50)

	for rows.Next() {
		var doc models.Document
		var body []byte

		if scanErr := rows.Scan(&doc.ID, &body, &doc.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localDocumentRepository.GetCollection").
				Str("collection", collection).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		doc.Body = body
		results = append(results, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localDocumentRepository.GetCollection").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// ReplaceCollection clears the stored collection and writes the given
// documents inside one transaction, so readers never observe a half-replaced
// collection.
func (l *localDocumentRepository) ReplaceCollection(ctx context.Context, collection string, docs []models.Document) error {
	log := logger.FromContext(ctx)

	tx, txErr := l.DB.BeginTx(ctx, nil)
	if txErr != nil {
		log.Err(txErr).
			Str("func", "localDocumentRepository.ReplaceCollection").
			Str("collection", collection).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, txErr)
	}
	defer tx.Rollback()

	if _, execErr := tx.ExecContext(ctx, clearLocalCollection, collection); execErr != nil {
		log.Err(execErr).
			Str("func", "localDocumentRepository.ReplaceCollection").
			Str("collection", collection).
			Msg("failed to clear local collection")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	for _, doc := range docs {
		if _, execErr := tx.ExecContext(ctx, saveLocalDocument, collection, doc.ID, []byte(doc.Body), doc.UpdatedAt); execErr != nil {
			log.Err(execErr).
				Str("func", "localDocumentRepository.ReplaceCollection").
				Str("collection", collection).
				Str("doc_id", doc.ID).
				Msg("failed to save document")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localDocumentRepository.ReplaceCollection").
			Str("collection", collection).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (l *localDocumentRepository) GetDocument(ctx context.Context, collection string, docID string) (models.Document, error) {
	log := logger.FromContext(ctx)

	var doc models.Document
	var body []byte

	row := l.DB.QueryRowContext(ctx, getLocalDocument, collection, docID)
	if scanErr := row.Scan(&doc.ID, &body, &doc.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Document{}, ErrNotFound
		}

		log.Err(scanErr).
			Str("func", "localDocumentRepository.GetDocument").
			Str("collection", collection).
			Str("doc_id", docID).
			Msg("failed to scan document row")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	doc.Body = body
	return doc, nil
}

func (l *localDocumentRepository) SaveDocument(ctx context.Context, collection string, doc models.Document) error {
	log := logger.FromContext(ctx)

	if _, execErr := l.DB.ExecContext(ctx, saveLocalDocument, collection, doc.ID, []byte(doc.Body), doc.UpdatedAt); execErr != nil {
		log.Err(execErr).
			Str("func", "localDocumentRepository.SaveDocument").
			Str("collection", collection).
			Str("doc_id", doc.ID).
			Msg("failed to execute upsert for document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}

func (l *localDocumentRepository) DeleteDocument(ctx context.Context, collection string, docID string) error {
	log := logger.FromContext(ctx)

	if _, execErr := l.DB.ExecContext(ctx, deleteLocalDocument, collection, docID); execErr != nil {
		log.Err(execErr).
			Str("func", "localDocumentRepository.DeleteDocument").
			Str("collection", collection).
			Str("doc_id", docID).
			Msg("failed to execute delete for document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}
