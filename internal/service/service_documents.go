package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/internal/validators"
	"github.com/MKhiriev/go-study-keeper/models"
)

// documentService is the concrete implementation of DocumentService. It is a
// thin policy layer over the DocumentRepository: input validation and error
// wrapping live here, SQL lives below.
type documentService struct {
	documents store.DocumentRepository
	validator validators.Validator
	logger    *logger.Logger
}

func NewDocumentService(documents store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documents: documents,
		validator: validators.NewDocumentValidator(),
		logger:    logger,
	}
}

// validate funnels every validator failure into ErrInvalidDataProvided so the
// transport layer maps all of them to one status code.
func (s *documentService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := s.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (s *documentService) Get(ctx context.Context, userID int64, collection string, docID string) (models.Document, error) {
	if userID == 0 {
		return models.Document{}, ErrInvalidDataProvided
	}
	target := models.BatchWriteEntry{Collection: collection, Document: models.Document{ID: docID}}
	if err := s.validate(ctx, target, validators.FieldCollection, validators.FieldDocumentID); err != nil {
		return models.Document{}, err
	}

	doc, err := s.documents.Get(ctx, userID, collection, docID)
	if err != nil {
		return models.Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (s *documentService) Set(ctx context.Context, userID int64, collection string, doc models.Document, merge bool) error {
	if userID == 0 {
		return ErrInvalidDataProvided
	}
	if err := s.validate(ctx, models.BatchWriteEntry{Collection: collection, Document: doc}); err != nil {
		return err
	}

	if err := s.documents.Upsert(ctx, userID, collection, doc, merge); err != nil {
		return fmt.Errorf("set document: %w", err)
	}
	return nil
}

func (s *documentService) Delete(ctx context.Context, userID int64, collection string, docID string) error {
	if userID == 0 {
		return ErrInvalidDataProvided
	}
	target := models.BatchWriteEntry{Collection: collection, Document: models.Document{ID: docID}}
	if err := s.validate(ctx, target, validators.FieldCollection, validators.FieldDocumentID); err != nil {
		return err
	}

	if err := s.documents.Delete(ctx, userID, collection, docID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (s *documentService) List(ctx context.Context, userID int64, collection string) ([]models.Document, error) {
	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}
	if err := s.validate(ctx, models.BatchWriteEntry{Collection: collection}, validators.FieldCollection); err != nil {
		return nil, err
	}

	docs, err := s.documents.List(ctx, userID, collection)
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	return docs, nil
}

func (s *documentService) BatchWrite(ctx context.Context, userID int64, entries []models.BatchWriteEntry) error {
	if userID == 0 {
		return ErrInvalidDataProvided
	}
	if err := s.validate(ctx, entries); err != nil {
		return err
	}

	if err := s.documents.BatchUpsert(ctx, userID, entries); err != nil {
		return fmt.Errorf("batch write: %w", err)
	}
	return nil
}

func (s *documentService) GetUserMeta(ctx context.Context, userID int64) (models.UserMeta, error) {
	if userID == 0 {
		return models.UserMeta{}, ErrInvalidDataProvided
	}

	meta, err := s.documents.GetUserMeta(ctx, userID)
	if err != nil {
		return models.UserMeta{}, fmt.Errorf("get user metadata: %w", err)
	}
	return meta, nil
}

func (s *documentService) SetUserMeta(ctx context.Context, userID int64, meta models.UserMeta) error {
	if userID == 0 {
		return ErrInvalidDataProvided
	}

	if err := s.documents.SetUserMeta(ctx, userID, meta); err != nil {
		return fmt.Errorf("set user metadata: %w", err)
	}
	return nil
}
