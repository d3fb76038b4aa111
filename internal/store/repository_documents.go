package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. It executes all document CRUD operations against the
// "documents" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, collection, doc_id).
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// Get retrieves a single document addressed by (userID, collection, docID).
//
// Returns [ErrNotFound] when no such document exists and
// [ErrPermissionDenied] when the database rejects the read on access rules.
func (d *documentRepository) Get(ctx context.Context, userID int64, collection string, docID string) (models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDocumentQuery(ctx, userID, collection, docID)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Get").
			Int64("user_id", userID).
			Str("collection", collection).
			Msg("failed to create query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc models.Document
	var body []byte

	row := d.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&doc.ID, &body, &doc.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Document{}, ErrNotFound
		}
		if isPermissionError(scanErr) {
			return models.Document{}, ErrPermissionDenied
		}

		log.Err(scanErr).
			Str("func", "documentRepository.Get").
			Int64("user_id", userID).
			Str("collection", collection).
			Str("doc_id", docID).
			Msg("failed to scan document row")
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	doc.Body = body
	return doc, nil
}

// Upsert inserts or updates a single document. With merge set the existing
// JSONB body is shallow-merged with the new one instead of being replaced.
func (d *documentRepository) Upsert(ctx context.Context, userID int64, collection string, doc models.Document, merge bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertDocumentQuery(ctx, userID, collection, doc, merge)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Upsert").
			Int64("user_id", userID).
			Str("collection", collection).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := d.DB.ExecContext(ctx, query, args...); execErr != nil {
		if isPermissionError(execErr) {
			return ErrPermissionDenied
		}

		log.Err(execErr).
			Str("func", "documentRepository.Upsert").
			Int64("user_id", userID).
			Str("collection", collection).
			Str("doc_id", doc.ID).
			Msg("failed to execute upsert for document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}

// Delete removes a single document. Deleting an absent document is not an
// error.
func (d *documentRepository) Delete(ctx context.Context, userID int64, collection string, docID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDocumentQuery(ctx, userID, collection, docID)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Delete").
			Int64("user_id", userID).
			Str("collection", collection).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := d.DB.ExecContext(ctx, query, args...); execErr != nil {
		if isPermissionError(execErr) {
			return ErrPermissionDenied
		}

		log.Err(execErr).
			Str("func", "documentRepository.Delete").
			Int64("user_id", userID).
			Str("collection", collection).
			Str("doc_id", docID).
			Msg("failed to execute delete for document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}

// List retrieves every document of the user's collection ordered by doc_id.
//
// Returns an empty slice when no records are found.
func (d *documentRepository) List(ctx context.Context, userID int64, collection string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCollectionQuery(ctx, userID, collection)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.List").
			Int64("user_id", userID).
			Str("collection", collection).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := d.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		if isPermissionError(queryErr) {
			return nil, ErrPermissionDenied
		}

		log.Err(queryErr).
			Str("func", "documentRepository.List").
			Int64("user_id", userID).
			Str("collection", collection).
			Msg("failed to execute query for listing collection")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.Document, 0, 50)

	for rows.Next() {
		var doc models.Document
		var body []byte

		if scanErr := rows.Scan(&doc.ID, &body, &doc.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.List").
				Int64("user_id", userID).
				Str("collection", collection).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		doc.Body = body
		results = append(results, doc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.List").
			Int64("user_id", userID).
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// BatchUpsert writes every entry inside a single transaction so that a bulk
// upload either lands completely or not at all.
func (d *documentRepository) BatchUpsert(ctx context.Context, userID int64, entries []models.BatchWriteEntry) error {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		return nil
	}

	tx, txErr := d.DB.BeginTx(ctx, nil)
	if txErr != nil {
		log.Err(txErr).
			Str("func", "documentRepository.BatchUpsert").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, txErr)
	}
	defer tx.Rollback()

	for _, entry := range entries {
		query, args, err := buildUpsertDocumentQuery(ctx, userID, entry.Collection, entry.Document, false)
		if err != nil {
			log.Err(err).
				Str("func", "documentRepository.BatchUpsert").
				Int64("user_id", userID).
				Str("collection", entry.Collection).
				Msg("failed to create query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			if isPermissionError(execErr) {
				return ErrPermissionDenied
			}

			log.Err(execErr).
				Str("func", "documentRepository.BatchUpsert").
				Int64("user_id", userID).
				Str("collection", entry.Collection).
				Str("doc_id", entry.Document.ID).
				Msg("failed to execute upsert inside batch")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "documentRepository.BatchUpsert").
			Int64("user_id", userID).
			Int("entries", len(entries)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// GetUserMeta retrieves the user's metadata row. A missing row is reported as
// [ErrNotFound]: it means no cloud data has ever been written for this user.
func (d *documentRepository) GetUserMeta(ctx context.Context, userID int64) (models.UserMeta, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserMetaQuery(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.GetUserMeta").
			Int64("user_id", userID).
			Msg("failed to create query")
		return models.UserMeta{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meta models.UserMeta
	row := d.DB.QueryRowContext(ctx, query, args...)
	if scanErr := row.Scan(&meta.CreatedAt, &meta.LastSync); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.UserMeta{}, ErrNotFound
		}
		if isPermissionError(scanErr) {
			return models.UserMeta{}, ErrPermissionDenied
		}

		log.Err(scanErr).
			Str("func", "documentRepository.GetUserMeta").
			Int64("user_id", userID).
			Msg("failed to scan user metadata row")
		return models.UserMeta{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return meta, nil
}

// SetUserMeta inserts or updates the user's metadata row. The stored
// created_at is preserved on update.
func (d *documentRepository) SetUserMeta(ctx context.Context, userID int64, meta models.UserMeta) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertUserMetaQuery(ctx, userID, meta)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.SetUserMeta").
			Int64("user_id", userID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, execErr := d.DB.ExecContext(ctx, query, args...); execErr != nil {
		if isPermissionError(execErr) {
			return ErrPermissionDenied
		}

		log.Err(execErr).
			Str("func", "documentRepository.SetUserMeta").
			Int64("user_id", userID).
			Msg("failed to execute upsert for user metadata")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	return nil
}
