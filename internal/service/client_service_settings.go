// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-keeper/internal/adapter"
	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/models"
)

// SettingsEngine keeps the singleton settings document continuously
// synchronized. It runs the same Idle → Loading → Listening ⇄ Pushing
// lifecycle as [CollectionEngine] specialised to one document: the initial
// load is a point read, and conflicts resolve by whole-document overwrite
// instead of a per-key merge.
//
// Optional prepare/restore hooks transform the document at the cloud
// boundary; they carry the API-key encryption so the plaintext form never
// leaves the device.
type SettingsEngine struct {
	local    store.LocalDocumentRepository
	remote   adapter.RemoteStore
	logger   *logger.Logger
	debounce time.Duration

	// prepare runs just before a push (e.g. encrypt sensitive fields).
	prepare func(models.AppSettings) (models.AppSettings, error)
	// restore runs on every pulled document (e.g. decrypt sensitive fields).
	restore func(models.AppSettings) (models.AppSettings, error)

	mu          sync.Mutex
	state       EngineState
	enabled     bool
	loaded      bool
	closed      bool
	fingerprint string
	pushTimer   *time.Timer
	sub         adapter.Subscription
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// NewSettingsEngine constructs the settings engine. It is disabled and idle
// until [SettingsEngine.Enable] is called.
func NewSettingsEngine(
	local store.LocalDocumentRepository,
	remote adapter.RemoteStore,
	debounce time.Duration,
	log *logger.Logger,
) *SettingsEngine {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &SettingsEngine{
		local:    local,
		remote:   remote,
		logger:   log,
		debounce: debounce,
		state:    StateIdle,
	}
}

// WithBoundaryHooks installs the push-side and pull-side document transforms.
func (e *SettingsEngine) WithBoundaryHooks(
	prepare func(models.AppSettings) (models.AppSettings, error),
	restore func(models.AppSettings) (models.AppSettings, error),
) *SettingsEngine {
	e.prepare = prepare
	e.restore = restore
	return e
}

// State reports the engine's current lifecycle phase.
func (e *SettingsEngine) State() EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Enable unblocks the engine and kicks off the initial load exactly once.
func (e *SettingsEngine) Enable(ctx context.Context) {
	e.mu.Lock()
	if e.closed || e.enabled {
		e.mu.Unlock()
		return
	}
	e.enabled = true
	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.wg.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.wg.Done()
		e.run(runCtx)
	}()
}

func (e *SettingsEngine) run(ctx context.Context) {
	if err := e.load(ctx); err != nil {
		e.logger.Err(err).Msg("settings initial load failed, engine stays idle")
		e.mu.Lock()
		e.state = StateIdle
		e.mu.Unlock()
		return
	}

	e.listen(ctx)
}

// load point-reads the remote settings document. When it exists the local
// copy is overwritten wholesale; a missing document keeps the local copy.
func (e *SettingsEngine) load(ctx context.Context) error {
	e.mu.Lock()
	e.state = StateLoading
	e.mu.Unlock()

	var current models.AppSettings

	doc, err := e.remote.GetDocument(ctx, models.CollectionSettings, models.SettingsDocumentID)
	switch {
	case err == nil:
		current, err = e.decodeDocument(doc)
		if err != nil {
			return fmt.Errorf("decode remote settings: %w", err)
		}
		if err = e.writeLocal(ctx, current); err != nil {
			return fmt.Errorf("persist remote settings: %w", err)
		}
	case errors.Is(err, adapter.ErrNotFound):
		current, err = e.readLocal(ctx)
		if err != nil {
			return fmt.Errorf("read local settings: %w", err)
		}
	default:
		return fmt.Errorf("read remote settings: %w", err)
	}

	fp, err := Fingerprint(current)
	if err != nil {
		return fmt.Errorf("fingerprint settings: %w", err)
	}

	e.mu.Lock()
	e.fingerprint = fp
	e.loaded = true
	e.state = StateListening
	e.mu.Unlock()

	e.logger.Debug().Msg("settings initial load complete")
	return nil
}

func (e *SettingsEngine) listen(ctx context.Context) {
	sub, err := e.remote.Subscribe(ctx, models.CollectionSettings)
	if err != nil {
		e.logger.Err(err).Msg("settings subscription failed, engine stays in push-only mode")
		return
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		sub.Close()
		return
	}
	e.sub = sub
	e.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sub.Snapshots():
			if !ok {
				if subErr := sub.Err(); subErr != nil {
					e.logger.Err(subErr).Msg("settings subscription ended")
				}
				return
			}
			if err := e.applySnapshot(ctx, event); err != nil {
				e.logger.Err(err).Msg("failed to apply settings snapshot")
			}
		}
	}
}

func (e *SettingsEngine) applySnapshot(ctx context.Context, event models.SnapshotEvent) error {
	var incoming models.AppSettings
	found := false
	for _, doc := range event.Documents {
		if doc.ID != models.SettingsDocumentID {
			continue
		}
		decoded, err := e.decodeDocument(doc)
		if err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		incoming = decoded
		found = true
		break
	}
	if !found {
		return nil
	}

	fp, err := Fingerprint(incoming)
	if err != nil {
		return fmt.Errorf("fingerprint snapshot: %w", err)
	}

	e.mu.Lock()
	if !e.enabled || e.state == StateLoading || fp == e.fingerprint {
		e.mu.Unlock()
		return nil
	}
	e.fingerprint = fp
	e.mu.Unlock()

	if err = e.writeLocal(ctx, incoming); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}

	e.logger.Debug().Msg("applied remote settings snapshot")
	return nil
}

// NotifyLocalChange schedules a debounced push when the local settings
// actually changed. Same gating rules as the collection engine.
func (e *SettingsEngine) NotifyLocalChange(ctx context.Context) {
	e.mu.Lock()
	if !e.enabled || !e.loaded || e.closed || e.state == StateLoading {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	current, err := e.readLocal(ctx)
	if err != nil {
		e.logger.Err(err).Msg("failed to read local settings for change detection")
		return
	}

	fp, err := Fingerprint(current)
	if err != nil {
		e.logger.Err(err).Msg("failed to fingerprint local settings")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || fp == e.fingerprint {
		return
	}

	if e.pushTimer != nil {
		e.pushTimer.Stop()
	}
	e.pushTimer = time.AfterFunc(e.debounce, func() {
		e.push(ctx)
	})
}

func (e *SettingsEngine) push(ctx context.Context) {
	e.mu.Lock()
	if !e.enabled || e.closed {
		e.mu.Unlock()
		return
	}
	e.state = StatePushing
	e.pushTimer = nil
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		if e.state == StatePushing {
			e.state = StateListening
		}
		e.mu.Unlock()
	}()

	current, err := e.readLocal(ctx)
	if err != nil {
		e.logger.Err(err).Msg("failed to read local settings for push")
		return
	}

	outgoing := current
	if e.prepare != nil {
		outgoing, err = e.prepare(current)
		if err != nil {
			e.logger.Err(err).Msg("failed to prepare settings for push")
			return
		}
	}

	// fingerprint the form the subscription echo will decode to, not the raw
	// local copy: prepare may add derived fields (the API-key digest) that
	// survive the pull-side restore, and an echo carrying them must still be
	// recognised as our own write
	echo := outgoing
	if e.restore != nil {
		echo, err = e.restore(outgoing)
		if err != nil {
			e.logger.Err(err).Msg("failed to compute settings echo form")
			return
		}
	}
	fp, err := Fingerprint(echo)
	if err != nil {
		e.logger.Err(err).Msg("failed to fingerprint settings push payload")
		return
	}

	doc, err := encodeSettings(outgoing)
	if err != nil {
		e.logger.Err(err).Msg("failed to encode settings push payload")
		return
	}

	e.mu.Lock()
	prev := e.fingerprint
	e.fingerprint = fp
	e.mu.Unlock()

	if err = e.remote.SetDocument(ctx, models.CollectionSettings, doc, false); err != nil {
		// the write never landed: put the fingerprint back so the same local
		// state still counts as unsynced and the next notification retries
		e.mu.Lock()
		if e.fingerprint == fp {
			e.fingerprint = prev
		}
		e.mu.Unlock()

		e.logger.Err(err).Msg("settings push failed")
		return
	}

	e.logger.Debug().Msg("pushed local settings")
}

// Close tears the engine down; see [CollectionEngine.Close].
func (e *SettingsEngine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.enabled = false
	if e.pushTimer != nil {
		e.pushTimer.Stop()
		e.pushTimer = nil
	}
	cancel := e.cancel
	sub := e.sub
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if sub != nil {
		sub.Close()
	}
	e.wg.Wait()
}

func (e *SettingsEngine) decodeDocument(doc models.Document) (models.AppSettings, error) {
	settings, err := decodeSettings(doc)
	if err != nil {
		return models.AppSettings{}, err
	}
	if e.restore != nil {
		return e.restore(settings)
	}
	return settings, nil
}

func (e *SettingsEngine) readLocal(ctx context.Context) (models.AppSettings, error) {
	doc, err := e.local.GetDocument(ctx, models.CollectionSettings, models.SettingsDocumentID)
	if errors.Is(err, store.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.AppSettings{}, err
	}
	return decodeSettings(doc)
}

func (e *SettingsEngine) writeLocal(ctx context.Context, settings models.AppSettings) error {
	doc, err := encodeSettings(settings)
	if err != nil {
		return err
	}
	return e.local.SaveDocument(ctx, models.CollectionSettings, doc)
}
