package service

import (
	"context"

	"github.com/MKhiriev/go-study-keeper/models"
)

// DocumentService is the server-side document API consumed by the HTTP
// handlers. All operations are scoped to the authenticated user.
type DocumentService interface {
	Get(ctx context.Context, userID int64, collection string, docID string) (models.Document, error)
	Set(ctx context.Context, userID int64, collection string, doc models.Document, merge bool) error
	Delete(ctx context.Context, userID int64, collection string, docID string) error
	List(ctx context.Context, userID int64, collection string) ([]models.Document, error)
	BatchWrite(ctx context.Context, userID int64, entries []models.BatchWriteEntry) error

	GetUserMeta(ctx context.Context, userID int64) (models.UserMeta, error)
	SetUserMeta(ctx context.Context, userID int64, meta models.UserMeta) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
