package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-study-keeper/models"
)

const (
	FieldDocumentID   = "document_id"
	FieldBody         = "body"
	FieldCollection   = "collection"
	FieldBatchEntries = "batch_entries"
	FieldLogin        = "login"
	FieldPassword     = "password"
)

type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Document:
		return v.validateDocument(ctx, value, fields...)
	case *models.Document:
		return v.validateDocument(ctx, *value, fields...)

	case models.BatchWriteEntry:
		return v.validateBatchEntry(ctx, value, fields...)
	case *models.BatchWriteEntry:
		return v.validateBatchEntry(ctx, *value, fields...)

	case []models.BatchWriteEntry:
		return v.validateBatchEntries(ctx, value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidCollection rejects names that would break routing: the collection is
// a URL path segment on the wire.
func isValidCollection(name string) bool {
	return name != "" && !strings.ContainsAny(name, "/ ")
}

func (v *DocumentValidator) validateDocument(_ context.Context, doc models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDocumentID, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldDocumentID:
			if doc.ID == "" {
				return ErrInvalidDocumentID
			}
		case FieldBody:
			if len(doc.Body) == 0 {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateBatchEntry(ctx context.Context, entry models.BatchWriteEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollection, FieldDocumentID, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldCollection:
			if !isValidCollection(entry.Collection) {
				return ErrInvalidCollection
			}
		case FieldDocumentID, FieldBody:
			if err := v.validateDocument(ctx, entry.Document, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateBatchEntries(ctx context.Context, entries []models.BatchWriteEntry, fields ...string) error {
	for i, entry := range entries {
		if err := v.validateBatchEntry(ctx, entry, fields...); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}
	return nil
}

func (v *DocumentValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
