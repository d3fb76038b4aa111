package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-study-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalDocumentRepository is the low-level on-device document store. It keeps
// the same collection/document shape as the remote store so sync engines can
// move records in either direction without translation.
type LocalDocumentRepository interface {
	GetCollection(ctx context.Context, collection string) ([]models.Document, error)
	// ReplaceCollection atomically swaps the stored collection contents for
	// the given documents.
	ReplaceCollection(ctx context.Context, collection string, docs []models.Document) error
	GetDocument(ctx context.Context, collection string, docID string) (models.Document, error)
	SaveDocument(ctx context.Context, collection string, doc models.Document) error
	DeleteDocument(ctx context.Context, collection string, docID string) error
}

// LocalSession is the persisted sign-in state of the device. It survives
// restarts so the user does not have to log in on every launch.
type LocalSession struct {
	UserID  int64     `json:"user_id"`
	Login   string    `json:"login"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// LocalSessionRepository persists the current sign-in session on device.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session LocalSession) error
	GetSession(ctx context.Context) (LocalSession, error)
	ClearSession(ctx context.Context) error
}
