// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-keeper/models"
)

func TestFingerprint_IgnoresTimestampChurn(t *testing.T) {
	a := models.Quiz{
		ID:        "q1",
		Name:      "Networking basics",
		CreatedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	b := a
	b.CreatedAt = time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC)
	b.UpdatedAt = time.Date(2026, 6, 6, 6, 6, 6, 0, time.UTC)

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB)
}

func TestFingerprint_IgnoresNestedVolatileFields(t *testing.T) {
	var a, b map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","inner":{"v":1,"updatedAt":"2026-01-01"}}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","inner":{"v":1,"updatedAt":"2026-08-31"}}`), &b))

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB)
}

func TestFingerprint_DetectsContentChange(t *testing.T) {
	a := models.Quiz{ID: "q1", Name: "before"}
	b := models.Quiz{ID: "q1", Name: "after"}

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)

	assert.NotEqual(t, fpA, fpB)
}

func TestFingerprint_IndependentOfKeyOrder(t *testing.T) {
	var a, b map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"name":"n","id":"x","tags":["t"]}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"tags":["t"],"id":"x","name":"n"}`), &b))

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB)
}

func TestFingerprint_SliceElementsStripped(t *testing.T) {
	a := []models.Quiz{{ID: "q1", UpdatedAt: time.Now()}}
	b := []models.Quiz{{ID: "q1", UpdatedAt: time.Now().Add(time.Hour)}}

	fpA, err := Fingerprint(a)
	require.NoError(t, err)
	fpB, err := Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, fpA, fpB)
}

func TestFingerprint_UnmarshalableValue(t *testing.T) {
	_, err := Fingerprint(func() {})
	assert.Error(t, err)
}
