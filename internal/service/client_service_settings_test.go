// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/models"
)

func readStoredSettings(t *testing.T, local *fakeLocalStore) models.AppSettings {
	t.Helper()
	doc, err := local.GetDocument(context.Background(), models.CollectionSettings, models.SettingsDocumentID)
	require.NoError(t, err)
	settings, err := decodeSettings(doc)
	require.NoError(t, err)
	return settings
}

func TestSettingsEngine_LoadOverwritesLocalWithCloudCopy(t *testing.T) {
	localSettings := models.DefaultSettings()
	localSettings.Theme = "light"

	cloudSettings := models.DefaultSettings()
	cloudSettings.Theme = "dark"

	local := newFakeLocalStore()
	require.NoError(t, local.SaveDocument(context.Background(), models.CollectionSettings, mustSettingsDoc(t, localSettings)))

	remote := newFakeRemoteStore()
	remote.collections[models.CollectionSettings] = []models.Document{mustSettingsDoc(t, cloudSettings)}

	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop())
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	// whole-document overwrite, not a field merge
	assert.Equal(t, cloudSettings, readStoredSettings(t, local))
}

func TestSettingsEngine_LoadKeepsLocalWhenCloudEmpty(t *testing.T) {
	localSettings := models.DefaultSettings()
	localSettings.Theme = "dark"

	local := newFakeLocalStore()
	require.NoError(t, local.SaveDocument(context.Background(), models.CollectionSettings, mustSettingsDoc(t, localSettings)))

	remote := newFakeRemoteStore()
	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop())
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	assert.Equal(t, localSettings, readStoredSettings(t, local))
}

func TestSettingsEngine_DebouncedPushSendsWholeDocument(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop())
	defer engine.Close()

	ctx := context.Background()
	engine.Enable(ctx)
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	changed := models.DefaultSettings()
	changed.Theme = "dark"
	require.NoError(t, local.SaveDocument(ctx, models.CollectionSettings, mustSettingsDoc(t, changed)))
	engine.NotifyLocalChange(ctx)
	engine.NotifyLocalChange(ctx)

	waitFor(t, func() bool { return remote.setDocCount() == 1 }, "debounced push")
	time.Sleep(3 * testDebounce)
	require.Equal(t, 1, remote.setDocCount())

	pushed, err := decodeSettings(remote.lastSetDoc())
	require.NoError(t, err)
	assert.Equal(t, changed, pushed)
}

func TestSettingsEngine_PrepareHookRunsBeforePush(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop()).
		WithBoundaryHooks(
			func(s models.AppSettings) (models.AppSettings, error) {
				s.GeminiAPIKey = "enc:" + s.GeminiAPIKey
				return s, nil
			},
			nil,
		)
	defer engine.Close()

	ctx := context.Background()
	engine.Enable(ctx)
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	changed := models.DefaultSettings()
	changed.GeminiAPIKey = "plain-key"
	require.NoError(t, local.SaveDocument(ctx, models.CollectionSettings, mustSettingsDoc(t, changed)))
	engine.NotifyLocalChange(ctx)

	waitFor(t, func() bool { return remote.setDocCount() == 1 }, "push")

	pushed, err := decodeSettings(remote.lastSetDoc())
	require.NoError(t, err)
	assert.Equal(t, "enc:plain-key", pushed.GeminiAPIKey)

	// the local copy keeps the untransformed form
	assert.Equal(t, "plain-key", readStoredSettings(t, local).GeminiAPIKey)
}

func TestSettingsEngine_RestoreHookRunsOnPulledDocument(t *testing.T) {
	cloudSettings := models.DefaultSettings()
	cloudSettings.GeminiAPIKey = "enc:secret"

	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	remote.collections[models.CollectionSettings] = []models.Document{mustSettingsDoc(t, cloudSettings)}

	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop()).
		WithBoundaryHooks(
			nil,
			func(s models.AppSettings) (models.AppSettings, error) {
				if s.GeminiAPIKey == "" {
					return s, nil
				}
				return s, errors.New("unreadable blob")
			},
		)
	defer engine.Close()

	engine.Enable(context.Background())
	time.Sleep(3 * testDebounce)

	// an undecryptable remote document must not clobber the local copy
	assert.NotEqual(t, StateListening, engine.State())
}

func TestSettingsEngine_FailedPushRetriedOnNextNotify(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop())
	defer engine.Close()

	ctx := context.Background()
	engine.Enable(ctx)
	waitFor(t, func() bool { return engine.State() == StateListening }, "initial load")

	remote.setSetDocErr(assert.AnError)
	changed := models.DefaultSettings()
	changed.Theme = "dark"
	require.NoError(t, local.SaveDocument(ctx, models.CollectionSettings, mustSettingsDoc(t, changed)))
	engine.NotifyLocalChange(ctx)
	waitFor(t, func() bool { return remote.setDocTryCount() == 1 }, "failed push attempt")
	require.Zero(t, remote.setDocCount())

	// once the cloud recovers the unchanged local state still goes out
	remote.setSetDocErr(nil)
	engine.NotifyLocalChange(ctx)
	waitFor(t, func() bool { return remote.setDocCount() == 1 }, "retried push")

	pushed, err := decodeSettings(remote.lastSetDoc())
	require.NoError(t, err)
	assert.Equal(t, "dark", pushed.Theme)
}

func TestSettingsEngine_EchoWithDerivedFieldsRecognised(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop()).
		WithBoundaryHooks(
			func(s models.AppSettings) (models.AppSettings, error) {
				if s.GeminiAPIKey == "" {
					return s, nil
				}
				s.GeminiAPIKeyDigest = "digest:" + s.GeminiAPIKey
				s.GeminiAPIKey = "enc:" + s.GeminiAPIKey
				return s, nil
			},
			func(s models.AppSettings) (models.AppSettings, error) {
				s.GeminiAPIKey = strings.TrimPrefix(s.GeminiAPIKey, "enc:")
				return s, nil
			},
		)
	defer engine.Close()

	ctx := context.Background()
	engine.Enable(ctx)
	waitFor(t, func() bool { return remote.subscription(models.CollectionSettings) != nil }, "subscription attach")

	changed := models.DefaultSettings()
	changed.GeminiAPIKey = "secret"
	require.NoError(t, local.SaveDocument(ctx, models.CollectionSettings, mustSettingsDoc(t, changed)))
	engine.NotifyLocalChange(ctx)
	waitFor(t, func() bool { return remote.setDocCount() == 1 }, "push")

	savesBefore := local.saveCount(models.CollectionSettings)

	// the server echoes the pushed document back, digest included; it must
	// fingerprint as our own write and not touch the local copy
	remote.subscription(models.CollectionSettings).emit(models.SnapshotEvent{
		Collection: models.CollectionSettings,
		Documents:  []models.Document{remote.lastSetDoc()},
	})
	time.Sleep(3 * testDebounce)

	assert.Equal(t, savesBefore, local.saveCount(models.CollectionSettings))
}

func TestSettingsEngine_AppliesRemoteSnapshot(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop())
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return remote.subscription(models.CollectionSettings) != nil }, "subscription attach")

	incoming := models.DefaultSettings()
	incoming.Theme = "dark"
	remote.subscription(models.CollectionSettings).emit(models.SnapshotEvent{
		Collection: models.CollectionSettings,
		Documents:  []models.Document{mustSettingsDoc(t, incoming)},
	})

	waitFor(t, func() bool { return local.docCount(models.CollectionSettings) == 1 }, "snapshot applied")
	assert.Equal(t, incoming, readStoredSettings(t, local))
}

func TestSettingsEngine_IgnoresForeignDocumentsInSnapshot(t *testing.T) {
	local := newFakeLocalStore()
	remote := newFakeRemoteStore()
	engine := NewSettingsEngine(local, remote, testDebounce, logger.Nop())
	defer engine.Close()

	engine.Enable(context.Background())
	waitFor(t, func() bool { return remote.subscription(models.CollectionSettings) != nil }, "subscription attach")

	remote.subscription(models.CollectionSettings).emit(models.SnapshotEvent{
		Collection: models.CollectionSettings,
		Documents:  []models.Document{mustDoc(t, quiz("stray", "not settings"))},
	})
	time.Sleep(3 * testDebounce)

	assert.Zero(t, local.docCount(models.CollectionSettings))
}
