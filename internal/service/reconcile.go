// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"dario.cat/mergo"

	"github.com/MKhiriev/go-study-keeper/models"
)

// MergeCollections produces one merged collection from a local and a remote
// copy without silently dropping a record that exists on only one side.
//
// The remote copy is authoritative for the intersection: when the same key is
// present on both sides the remote record wins wholesale. Local-only records
// are carried over unmodified. The result carries remote records first (in
// remote order) followed by local-only records (in local order); callers must
// not rely on ordering beyond determinism.
func MergeCollections[T models.Keyed](local, remote []T) []T {
	merged := make([]T, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(remote))

	for _, record := range remote {
		merged = append(merged, record)
		seen[record.Key()] = struct{}{}
	}

	for _, record := range local {
		if _, ok := seen[record.Key()]; ok {
			continue
		}
		merged = append(merged, record)
		seen[record.Key()] = struct{}{}
	}

	return merged
}

// WithoutDefaultQuiz strips the built-in seed quiz from a collection before
// it takes part in any reconciliation. The seed quiz lives only on device and
// is never uploaded, merged or deleted.
func WithoutDefaultQuiz(quizzes []models.Quiz) []models.Quiz {
	filtered := make([]models.Quiz, 0, len(quizzes))
	for _, q := range quizzes {
		if q.ID == models.DefaultQuizID || q.IsDefault {
			continue
		}
		filtered = append(filtered, q)
	}
	return filtered
}

// WithDefaultQuiz prepends the built-in seed quiz to a read result. The seed
// quiz is never part of the stored collection, so every listing re-attaches
// it; a stored copy under the same ID (a record synced in by an older build)
// takes precedence over the shipped one.
func WithDefaultQuiz(quizzes []models.Quiz) []models.Quiz {
	for _, q := range quizzes {
		if q.ID == models.DefaultQuizID {
			return quizzes
		}
	}
	return append([]models.Quiz{models.DefaultQuiz()}, quizzes...)
}

// MergeSettings overlays local settings on top of the cloud copy: every field
// the local copy has set to a non-zero value takes precedence, every field it
// left at the zero value falls through to the cloud value. This is the
// opposite precedence of [MergeCollections] and is kept deliberately: a
// device's explicit preference changes should survive a merge.
func MergeSettings(local, cloud models.AppSettings) (models.AppSettings, error) {
	merged := local
	if err := mergo.Merge(&merged, cloud); err != nil {
		return models.AppSettings{}, err
	}
	return merged, nil
}
