// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-study-keeper/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// placeholder format ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// documentColumns lists every column of the "documents" table in scan order.
var documentColumns = []string{"doc_id", "body", "updated_at"}

// buildSelectCollectionQuery builds a SELECT returning every document of the
// user's collection ordered by doc_id for deterministic listings.
func buildSelectCollectionQuery(ctx context.Context, userID int64, collection string) (string, []any, error) {
	return psql.
		Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"user_id": userID, "collection": collection}).
		OrderBy("doc_id").
		ToSql()
}

// buildSelectDocumentQuery builds a SELECT for a single document addressed by
// (user_id, collection, doc_id).
func buildSelectDocumentQuery(ctx context.Context, userID int64, collection string, docID string) (string, []any, error) {
	return psql.
		Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"user_id": userID, "collection": collection, "doc_id": docID}).
		ToSql()
}

// buildUpsertDocumentQuery builds an INSERT ... ON CONFLICT upsert for a
// single document. When merge is true the stored JSONB body is shallow-merged
// with the incoming one (existing top-level keys not present in the new body
// survive); otherwise the body is replaced wholesale.
func buildUpsertDocumentQuery(ctx context.Context, userID int64, collection string, doc models.Document, merge bool) (string, []any, error) {
	onConflict := `ON CONFLICT (user_id, collection, doc_id)
		DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
	if merge {
		onConflict = `ON CONFLICT (user_id, collection, doc_id)
		DO UPDATE SET body = documents.body || EXCLUDED.body, updated_at = EXCLUDED.updated_at`
	}

	return psql.
		Insert("documents").
		Columns("user_id", "collection", "doc_id", "body", "updated_at").
		Values(userID, collection, doc.ID, []byte(doc.Body), doc.UpdatedAt).
		Suffix(onConflict).
		ToSql()
}

// buildDeleteDocumentQuery builds a DELETE for a single document.
func buildDeleteDocumentQuery(ctx context.Context, userID int64, collection string, docID string) (string, []any, error) {
	return psql.
		Delete("documents").
		Where(sq.Eq{"user_id": userID, "collection": collection, "doc_id": docID}).
		ToSql()
}

// buildSelectUserMetaQuery builds a SELECT for the user's metadata row.
func buildSelectUserMetaQuery(ctx context.Context, userID int64) (string, []any, error) {
	return psql.
		Select("created_at", "last_sync").
		From("user_metadata").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildUpsertUserMetaQuery builds an upsert for the user's metadata row.
// On conflict only last_sync is updated: created_at records the moment cloud
// data first appeared for this user and must never move afterwards.
func buildUpsertUserMetaQuery(ctx context.Context, userID int64, meta models.UserMeta) (string, []any, error) {
	return psql.
		Insert("user_metadata").
		Columns("user_id", "created_at", "last_sync").
		Values(userID, meta.CreatedAt, meta.LastSync).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET last_sync = EXCLUDED.last_sync`).
		ToSql()
}

// buildCreateUserQuery builds an INSERT for a new user account returning all
// server-assigned columns.
func buildCreateUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return psql.
		Insert("users").
		Columns("login", "password", "name").
		Values(user.Login, user.Password, user.Name).
		Suffix(`RETURNING user_id, login, password, name, created_at`).
		ToSql()
}

// buildFindUserByLoginQuery builds a SELECT locating a user account by login.
func buildFindUserByLoginQuery(ctx context.Context, login string) (string, []any, error) {
	return psql.
		Select("user_id", "login", "password", "name", "created_at").
		From("users").
		Where(sq.Eq{"login": login}).
		ToSql()
}
