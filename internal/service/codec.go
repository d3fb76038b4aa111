package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-keeper/models"
)

// EncodeRecords converts typed records into the wire/storage document shape.
// Each document is addressed by the record's key and stamped with now so the
// store can report when the copy last moved.
func EncodeRecords[T models.Keyed](records []T) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(records))
	now := time.Now().UTC()

	for _, record := range records {
		body, err := json.Marshal(record)
		if err != nil {
			return nil, fmt.Errorf("encode record %q: %w", record.Key(), err)
		}
		docs = append(docs, models.Document{
			ID:        record.Key(),
			Body:      body,
			UpdatedAt: now,
		})
	}

	return docs, nil
}

// DecodeRecords converts stored documents back into typed records. Documents
// whose body cannot be decoded fail the whole conversion; a store holding
// malformed documents is a bug, not a condition to paper over.
func DecodeRecords[T models.Keyed](docs []models.Document) ([]T, error) {
	records := make([]T, 0, len(docs))

	for _, doc := range docs {
		var record T
		if err := json.Unmarshal(doc.Body, &record); err != nil {
			return nil, fmt.Errorf("decode document %q: %w", doc.ID, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// encodeSettings wraps the settings struct in the singleton settings
// document.
func encodeSettings(settings models.AppSettings) (models.Document, error) {
	body, err := json.Marshal(settings)
	if err != nil {
		return models.Document{}, fmt.Errorf("encode settings: %w", err)
	}
	return models.Document{
		ID:        models.SettingsDocumentID,
		Body:      body,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// decodeSettings unwraps the singleton settings document.
func decodeSettings(doc models.Document) (models.AppSettings, error) {
	var settings models.AppSettings
	if err := json.Unmarshal(doc.Body, &settings); err != nil {
		return models.AppSettings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}
