// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-study-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository manages user accounts on the server side.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// DocumentRepository stores user documents grouped by collection name.
// Documents are opaque JSON bodies addressed by (userID, collection, docID).
type DocumentRepository interface {
	Get(ctx context.Context, userID int64, collection string, docID string) (models.Document, error)
	// Upsert inserts or replaces a document. When merge is true an existing
	// body is shallow-merged with the new one instead of being replaced.
	Upsert(ctx context.Context, userID int64, collection string, doc models.Document, merge bool) error
	Delete(ctx context.Context, userID int64, collection string, docID string) error
	List(ctx context.Context, userID int64, collection string) ([]models.Document, error)
	BatchUpsert(ctx context.Context, userID int64, entries []models.BatchWriteEntry) error

	GetUserMeta(ctx context.Context, userID int64) (models.UserMeta, error)
	SetUserMeta(ctx context.Context, userID int64, meta models.UserMeta) error
}

// ErrorClassificator tells apart transient database errors from permanent
// ones so callers can decide whether a retry makes sense.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
