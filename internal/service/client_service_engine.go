// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-keeper/internal/adapter"
	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/models"
)

// EngineState is the lifecycle phase of a [CollectionEngine].
type EngineState int

const (
	// StateIdle means the engine has not started its initial load yet.
	StateIdle EngineState = iota

	// StateLoading means the one-time remote read and merge is in flight.
	StateLoading

	// StateListening means the initial load completed and the engine is
	// consuming the live subscription.
	StateListening

	// StatePushing means a debounced push of local changes is in flight.
	StatePushing
)

// CollectionEngine keeps one keyed collection continuously synchronized
// between the device and the cloud.
//
// Lifecycle: Idle → Loading → Listening ⇄ Pushing. The initial Loading phase
// reads the full remote collection, merges it with the local copy
// (remote-wins per key, local-only records preserved) and persists the result
// locally. After that the engine pulls via the live subscription and pushes
// local edits after a quiet period, using a content fingerprint to tell real
// changes apart from echoes of its own writes.
//
// The engine stays inert until Enable is called: during the sign-in
// reconciliation window the one-time bulk action owns the collection and the
// engine must not race it.
type CollectionEngine[T models.Keyed] struct {
	collection string
	local      store.LocalDocumentRepository
	remote     adapter.RemoteStore
	logger     *logger.Logger
	debounce   time.Duration

	// exclude filters records out of every local read; used to keep the
	// built-in seed quiz away from the cloud.
	exclude func(T) bool

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

// NewCollectionEngine constructs an engine for one collection. The engine is
// disabled and idle until [CollectionEngine.Enable] is called.
func NewCollectionEngine[T models.Keyed](
	collection string,
	local store.LocalDocumentRepository,
	remote adapter.RemoteStore,
	debounce time.Duration,
	log *logger.Logger,
) *CollectionEngine[T] {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &CollectionEngine[T]{
		collection: collection,
		local:      local,
		remote:     remote,
		logger:     log,
		debounce:   debounce,
		state:      StateIdle,
	}
}

// WithExclude installs a record filter applied to every local read. Excluded
// records never take part in a merge and are never pushed.
func (e *CollectionEngine[T]) WithExclude(exclude func(T) bool) *CollectionEngine[T] {
	e.exclude = exclude
	return e
}

// State reports the engine's current lifecycle phase.
func (e *CollectionEngine[T]) State() EngineState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Enable unblocks the engine and kicks off the initial load exactly once.
// Subsequent calls are no-ops while the engine is running.
func (e *CollectionEngine[T]) Enable(ctx context.Context) {
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

// run performs the one-time load and then consumes the live subscription
// until the engine is torn down.
func (e *CollectionEngine[T]) run(ctx context.Context) {
	if err := e.load(ctx); err != nil {
		e.logger.Err(err).
			Str("collection", e.collection).
			Msg("initial load failed, engine stays idle")
		e.mu.Lock()
		e.state = StateIdle
		e.mu.Unlock()
		return
	}

	e.listen(ctx)
}

// load is the Idle → Loading → Listening leg: one full remote read, a
// remote-wins merge with the local copy, local persist, fingerprint record.
func (e *CollectionEngine[T]) load(ctx context.Context) error {
	e.mu.Lock()
	e.state = StateLoading
	e.mu.Unlock()

	remoteDocs, err := e.remote.ListCollection(ctx, e.collection)
	if err != nil {
		return fmt.Errorf("list remote %s: %w", e.collection, err)
	}
	remoteRecords, err := DecodeRecords[T](remoteDocs)
	if err != nil {
		return fmt.Errorf("decode remote %s: %w", e.collection, err)
	}

	localRecords, err := e.readLocal(ctx)
	if err != nil {
		return fmt.Errorf("read local %s: %w", e.collection, err)
	}

	merged := MergeCollections(localRecords, remoteRecords)

	if err = e.writeLocal(ctx, merged); err != nil {
		return fmt.Errorf("persist merged %s: %w", e.collection, err)
	}

	fp, err := Fingerprint(merged)
	if err != nil {
		return fmt.Errorf("fingerprint %s: %w", e.collection, err)
	}

	e.mu.Lock()
	e.fingerprint = fp
	e.loaded = true
	e.state = StateListening
	e.mu.Unlock()

	e.logger.Debug().
		Str("collection", e.collection).
		Int("records", len(merged)).
		Msg("initial load complete")
	return nil
}

// listen attaches the live subscription and replaces the local copy whenever
// a genuinely new remote snapshot arrives. Snapshots that fingerprint equal to
// the engine's last-known state are echoes of its own writes and are dropped.
func (e *CollectionEngine[T]) listen(ctx context.Context) {
	sub, err := e.remote.Subscribe(ctx, e.collection)
	if err != nil {
		e.logger.Err(err).
			Str("collection", e.collection).
			Msg("live subscription failed, engine stays in push-only mode")
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
					e.logger.Err(subErr).
						Str("collection", e.collection).
						Msg("live subscription ended")
				}
				return
			}
			if err := e.applySnapshot(ctx, event); err != nil {
				e.logger.Err(err).
					Str("collection", e.collection).
					Msg("failed to apply remote snapshot")
			}
		}
	}
}

func (e *CollectionEngine[T]) applySnapshot(ctx context.Context, event models.SnapshotEvent) error {
	records, err := DecodeRecords[T](event.Documents)
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	fp, err := Fingerprint(records)
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

	if err = e.writeLocal(ctx, records); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}

	e.logger.Debug().
		Str("collection", e.collection).
		Int("records", len(records)).
		Msg("applied remote snapshot")
	return nil
}

// NotifyLocalChange tells the engine the local copy may have changed. If the
// content fingerprint actually moved, a push is scheduled after the debounce
// interval; a pending push is rescheduled instead of stacking. Calls before
// the initial load completed, while disabled, or after teardown are no-ops.
func (e *CollectionEngine[T]) NotifyLocalChange(ctx context.Context) {
	e.mu.Lock()
	if !e.enabled || !e.loaded || e.closed || e.state == StateLoading {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	records, err := e.readLocal(ctx)
	if err != nil {
		e.logger.Err(err).
			Str("collection", e.collection).
			Msg("failed to read local copy for change detection")
		return
	}

	fp, err := Fingerprint(records)
	if err != nil {
		e.logger.Err(err).
			Str("collection", e.collection).
			Msg("failed to fingerprint local copy")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || fp == e.fingerprint {
		return
	}

	// at most one pending push per collection: a new change resets the timer
	if e.pushTimer != nil {
		e.pushTimer.Stop()
	}
	e.pushTimer = time.AfterFunc(e.debounce, func() {
		e.push(ctx)
	})
}

// push writes every local record to the remote store and advances the
// fingerprint to the just-pushed state so the resulting subscription echo is
// recognised as our own.
func (e *CollectionEngine[T]) push(ctx context.Context) {
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

	records, err := e.readLocal(ctx)
	if err != nil {
		e.logger.Err(err).
			Str("collection", e.collection).
			Msg("failed to read local copy for push")
		return
	}

	fp, err := Fingerprint(records)
	if err != nil {
		e.logger.Err(err).
			Str("collection", e.collection).
			Msg("failed to fingerprint push payload")
		return
	}

	docs, err := EncodeRecords(records)
	if err != nil {
		e.logger.Err(err).
			Str("collection", e.collection).
			Msg("failed to encode push payload")
		return
	}

	entries := make([]models.BatchWriteEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, models.BatchWriteEntry{Collection: e.collection, Document: doc})
	}

	// advance the fingerprint before the write lands so the subscription
	// echo of this push is already recognised
	e.mu.Lock()
	prev := e.fingerprint
	e.fingerprint = fp
	e.mu.Unlock()

	if err = e.remote.BatchWrite(ctx, models.BatchWriteRequest{Entries: entries, Length: len(entries)}); err != nil {
		// the write never landed: put the fingerprint back so the same local
		// state still counts as unsynced and the next notification retries
		e.mu.Lock()
		if e.fingerprint == fp {
			e.fingerprint = prev
		}
		e.mu.Unlock()

		e.logger.Err(err).
			Str("collection", e.collection).
			Int("records", len(entries)).
			Msg("push failed")
		return
	}

	e.logger.Debug().
		Str("collection", e.collection).
		Int("records", len(entries)).
		Msg("pushed local changes")
}

// Close tears the engine down: the live subscription detaches, any pending
// debounce timer is cleared and no push fires afterwards. Safe to call more
// than once.
func (e *CollectionEngine[T]) Close() {
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

func (e *CollectionEngine[T]) readLocal(ctx context.Context) ([]T, error) {
	docs, err := e.local.GetCollection(ctx, e.collection)
	if err != nil {
		return nil, err
	}
	records, err := DecodeRecords[T](docs)
	if err != nil {
		return nil, err
	}
	if e.exclude == nil {
		return records, nil
	}

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if e.exclude(record) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered, nil
}

func (e *CollectionEngine[T]) writeLocal(ctx context.Context, records []T) error {
	docs, err := EncodeRecords(records)
	if err != nil {
		return err
	}
	return e.local.ReplaceCollection(ctx, e.collection, docs)
}
