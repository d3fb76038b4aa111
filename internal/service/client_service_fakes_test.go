// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-keeper/internal/adapter"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/models"
)

// Stateful in-memory doubles for the engine and manager tests. The generated
// gomock mocks fit call-by-call expectations well, but the sync flows here
// are multi-step conversations with state carried between calls, so plain
// fakes keep the tests readable.

// ── local store fake ────────────────────────────────────────────────────────

type fakeLocalStore struct {
	mu           sync.Mutex
	collections  map[string][]models.Document
	replaceCalls map[string]int
	saveCalls    map[string]int
	getErr       error
}

func newFakeLocalStore() *fakeLocalStore {
	return &fakeLocalStore{
		collections:  make(map[string][]models.Document),
		replaceCalls: make(map[string]int),
		saveCalls:    make(map[string]int),
	}
}

func (f *fakeLocalStore) GetCollection(_ context.Context, collection string) ([]models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]models.Document(nil), f.collections[collection]...), nil
}

func (f *fakeLocalStore) ReplaceCollection(_ context.Context, collection string, docs []models.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.collections[collection] = append([]models.Document(nil), docs...)
	f.replaceCalls[collection]++
	return nil
}

func (f *fakeLocalStore) GetDocument(_ context.Context, collection string, docID string) (models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.collections[collection] {
		if doc.ID == docID {
			return doc, nil
		}
	}
	return models.Document{}, store.ErrNotFound
}

func (f *fakeLocalStore) SaveDocument(_ context.Context, collection string, doc models.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls[collection]++
	for i, existing := range f.collections[collection] {
		if existing.ID == doc.ID {
			f.collections[collection][i] = doc
			return nil
		}
	}
	f.collections[collection] = append(f.collections[collection], doc)
	return nil
}

func (f *fakeLocalStore) DeleteDocument(_ context.Context, collection string, docID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	docs := f.collections[collection]
	for i, doc := range docs {
		if doc.ID == docID {
			f.collections[collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeLocalStore) replaceCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.replaceCalls[collection]
}

func (f *fakeLocalStore) saveCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saveCalls[collection]
}

func (f *fakeLocalStore) docCount(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.collections[collection])
}

// ── remote store fake ───────────────────────────────────────────────────────

type fakeRemoteStore struct {
	mu          sync.Mutex
	token       string
	collections map[string][]models.Document
	meta        *models.UserMeta

	metaErr   error
	listErr   error
	batchErr  error
	setDocErr error

	batchWrites   []models.BatchWriteRequest
	batchAttempts int
	setDocs       []models.Document
	setDocTries   int
	setMetas      int

	subs map[string]*fakeSubscription
}

func newFakeRemoteStore() *fakeRemoteStore {
	return &fakeRemoteStore{
		collections: make(map[string][]models.Document),
		subs:        make(map[string]*fakeSubscription),
	}
}

func (f *fakeRemoteStore) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeRemoteStore) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeRemoteStore) Register(_ context.Context, user models.User) (models.User, error) {
	user.UserID = 1
	return user, nil
}

func (f *fakeRemoteStore) Login(_ context.Context, _ models.User) (models.Token, error) {
	return models.Token{UserID: 1}, nil
}

func (f *fakeRemoteStore) GetDocument(_ context.Context, collection, id string) (models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.collections[collection] {
		if doc.ID == id {
			return doc, nil
		}
	}
	return models.Document{}, adapter.ErrNotFound
}

func (f *fakeRemoteStore) SetDocument(_ context.Context, collection string, doc models.Document, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setDocTries++
	if f.setDocErr != nil {
		return f.setDocErr
	}
	f.setDocs = append(f.setDocs, doc)
	f.upsertLocked(collection, doc)
	return nil
}

func (f *fakeRemoteStore) DeleteDocument(_ context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	docs := f.collections[collection]
	for i, doc := range docs {
		if doc.ID == id {
			f.collections[collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRemoteStore) ListCollection(_ context.Context, collection string) ([]models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Document(nil), f.collections[collection]...), nil
}

func (f *fakeRemoteStore) BatchWrite(_ context.Context, req models.BatchWriteRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchAttempts++
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batchWrites = append(f.batchWrites, req)
	for _, entry := range req.Entries {
		f.upsertLocked(entry.Collection, entry.Document)
	}
	return nil
}

func (f *fakeRemoteStore) GetUserMeta(_ context.Context) (models.UserMeta, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.metaErr != nil {
		return models.UserMeta{}, f.metaErr
	}
	if f.meta == nil {
		return models.UserMeta{}, adapter.ErrNotFound
	}
	return *f.meta, nil
}

func (f *fakeRemoteStore) SetUserMeta(_ context.Context, meta models.UserMeta) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setMetas++
	f.meta = &meta
	return nil
}

func (f *fakeRemoteStore) Subscribe(_ context.Context, collection string) (adapter.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub := newFakeSubscription()
	f.subs[collection] = sub
	return sub, nil
}

func (f *fakeRemoteStore) upsertLocked(collection string, doc models.Document) {
	for i, existing := range f.collections[collection] {
		if existing.ID == doc.ID {
			f.collections[collection][i] = doc
			return
		}
	}
	f.collections[collection] = append(f.collections[collection], doc)
}

func (f *fakeRemoteStore) batchWriteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batchWrites)
}

func (f *fakeRemoteStore) batchAttemptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.batchAttempts
}

func (f *fakeRemoteStore) setBatchErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchErr = err
}

func (f *fakeRemoteStore) setDocTryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setDocTries
}

func (f *fakeRemoteStore) setSetDocErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setDocErr = err
}

func (f *fakeRemoteStore) setDocCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.setDocs)
}

func (f *fakeRemoteStore) setMetaCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setMetas
}

func (f *fakeRemoteStore) lastBatch() models.BatchWriteRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.batchWrites) == 0 {
		return models.BatchWriteRequest{}
	}
	return f.batchWrites[len(f.batchWrites)-1]
}

func (f *fakeRemoteStore) lastSetDoc() models.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.setDocs) == 0 {
		return models.Document{}
	}
	return f.setDocs[len(f.setDocs)-1]
}

func (f *fakeRemoteStore) subscription(collection string) *fakeSubscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subs[collection]
}

// ── subscription fake ───────────────────────────────────────────────────────

type fakeSubscription struct {
	ch     chan models.SnapshotEvent
	once   sync.Once
	err    error
	closed chan struct{}
}

func newFakeSubscription() *fakeSubscription {
	return &fakeSubscription{
		ch:     make(chan models.SnapshotEvent, 8),
		closed: make(chan struct{}),
	}
}

func (s *fakeSubscription) Snapshots() <-chan models.SnapshotEvent { return s.ch }

func (s *fakeSubscription) Err() error { return s.err }

func (s *fakeSubscription) Close() {
	s.once.Do(func() {
		close(s.closed)
		close(s.ch)
	})
}

func (s *fakeSubscription) emit(event models.SnapshotEvent) {
	select {
	case <-s.closed:
	case s.ch <- event:
	}
}

// ── shared helpers ──────────────────────────────────────────────────────────

func mustDoc(t *testing.T, record models.Keyed) models.Document {
	t.Helper()
	body, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal %q: %v", record.Key(), err)
	}
	return models.Document{ID: record.Key(), Body: body, UpdatedAt: time.Now().UTC()}
}

func mustSettingsDoc(t *testing.T, settings models.AppSettings) models.Document {
	t.Helper()
	body, err := json.Marshal(settings)
	if err != nil {
		t.Fatalf("marshal settings: %v", err)
	}
	return models.Document{ID: models.SettingsDocumentID, Body: body, UpdatedAt: time.Now().UTC()}
}

func decodeQuizzes(t *testing.T, docs []models.Document) map[string]models.Quiz {
	t.Helper()
	quizzes, err := DecodeRecords[models.Quiz](docs)
	if err != nil {
		t.Fatalf("decode quizzes: %v", err)
	}
	byID := make(map[string]models.Quiz, len(quizzes))
	for _, q := range quizzes {
		byID[q.ID] = q
	}
	return byID
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within deadline: %s", msg)
}
