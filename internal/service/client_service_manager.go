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

// SyncState is the per-session sign-in classification result. It is owned
// exclusively by the [SyncManager]; once SyncComplete turns true the state is
// frozen for the remainder of the session.
type SyncState struct {
	IsNewUser    bool
	HasLocalData bool
	HasCloudData bool
	SyncComplete bool
	Syncing      bool
}

// SyncDecision is what the sign-in classification presents to the user: the
// classified state plus the bulk actions valid for it. An empty action list
// means the classification auto-resolved and no dialog is shown.
type SyncDecision struct {
	State   SyncState
	Actions []models.SyncAction
}

// SyncManager resolves the one-time ambiguity of what should happen to the
// diverged local and cloud copies the moment a user signs in. It classifies
// the session (new vs returning user, local data present, cloud data
// present), offers the valid subset of {upload, download, merge, cancel} and
// executes the chosen action exactly once. On completion it flips
// SyncComplete and invokes the completion hook, unblocking the continuous
// engines.
type SyncManager struct {
	local  store.LocalDocumentRepository
	remote adapter.RemoteStore
	logger *logger.Logger

	userID     int64
	configured bool

	// prepareSettings transforms the settings document before it is written
	// to the cloud (API-key encryption), restoreSettings undoes the transform
	// on every settings document read from the cloud. Both optional.
	prepareSettings func(models.AppSettings) (models.AppSettings, error)
	restoreSettings func(models.AppSettings) (models.AppSettings, error)

	// onComplete fires once, after SyncComplete turns true. Used to enable
	// the continuous engines.
	onComplete func(context.Context)

	mu      sync.Mutex
	state   SyncState
	offered []models.SyncAction
}

// NewSyncManager constructs a manager for one signed-in session. The userID
// and configured flag come from the authentication collaborator; when
// configured is false every operation is a no-op that completes immediately.
func NewSyncManager(
	local store.LocalDocumentRepository,
	remote adapter.RemoteStore,
	userID int64,
	configured bool,
	log *logger.Logger,
) *SyncManager {
	return &SyncManager{
		local:      local,
		remote:     remote,
		userID:     userID,
		configured: configured,
		logger:     log,
	}
}

// WithSettingsHooks installs the push-side and pull-side settings transforms;
// the same pair the settings engine carries, so a bulk action and the
// continuous engine see identical plaintext forms.
func (m *SyncManager) WithSettingsHooks(
	prepare func(models.AppSettings) (models.AppSettings, error),
	restore func(models.AppSettings) (models.AppSettings, error),
) *SyncManager {
	m.prepareSettings = prepare
	m.restoreSettings = restore
	return m
}

// WithOnComplete installs the completion hook.
func (m *SyncManager) WithOnComplete(onComplete func(context.Context)) *SyncManager {
	m.onComplete = onComplete
	return m
}

// State returns a copy of the current sync state.
func (m *SyncManager) State() SyncState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Classify runs the sign-in classification exactly once per session.
//
// Any store I/O failure here is non-fatal: the session degrades to "proceed
// without cloud sync" by completing immediately, so the app stays usable with
// an unreachable or misconfigured cloud. In particular a permission-denied
// classification terminates into SyncComplete rather than retrying.
func (m *SyncManager) Classify(ctx context.Context) SyncDecision {
	m.mu.Lock()
	if m.state.SyncComplete {
		decision := SyncDecision{State: m.state}
		m.mu.Unlock()
		return decision
	}
	m.mu.Unlock()

	if !m.configured || m.userID == 0 {
		return m.completeWithoutDialog(ctx, false)
	}

	isNewUser, err := m.classifyNewUser(ctx)
	if err != nil {
		m.logger.Err(err).Msg("classification failed, proceeding without cloud sync")
		return m.completeWithoutDialog(ctx, false)
	}

	hasLocalData, err := m.classifyLocalData(ctx)
	if err != nil {
		m.logger.Err(err).Msg("local classification failed, proceeding without cloud sync")
		return m.completeWithoutDialog(ctx, false)
	}

	hasCloudData := false
	if !isNewUser {
		hasCloudData, err = m.classifyCloudData(ctx)
		if err != nil {
			m.logger.Err(err).Msg("cloud classification failed, proceeding without cloud sync")
			return m.completeWithoutDialog(ctx, false)
		}
	}

	m.mu.Lock()
	m.state.IsNewUser = isNewUser
	m.state.HasLocalData = hasLocalData
	m.state.HasCloudData = hasCloudData
	m.mu.Unlock()

	actions := availableActions(isNewUser, hasLocalData, hasCloudData)
	if len(actions) == 0 {
		// trivial cases resolve silently: brand-new user with nothing to
		// move, or returning user with no data anywhere
		return m.completeWithoutDialog(ctx, isNewUser)
	}

	m.mu.Lock()
	m.offered = actions
	decision := SyncDecision{State: m.state, Actions: actions}
	m.mu.Unlock()
	return decision
}

// availableActions is the decision table: which bulk actions make sense for
// the given presence combination. An empty result means auto-complete.
func availableActions(isNewUser, hasLocalData, hasCloudData bool) []models.SyncAction {
	if isNewUser {
		if !hasLocalData {
			return nil
		}
		return []models.SyncAction{models.SyncActionUpload, models.SyncActionCancel}
	}

	if !hasLocalData && !hasCloudData {
		return nil
	}

	actions := make([]models.SyncAction, 0, 4)
	if hasLocalData && hasCloudData {
		actions = append(actions, models.SyncActionMerge)
	}
	if hasCloudData {
		actions = append(actions, models.SyncActionDownload)
	}
	if hasLocalData {
		actions = append(actions, models.SyncActionUpload)
	}
	return append(actions, models.SyncActionCancel)
}

// Resolve executes the user's chosen bulk action exactly once. On success (or
// cancel) the session completes and the continuous engines are unblocked. On
// failure the session stays unresolved so the user can re-invoke the action;
// no automatic retry happens.
func (m *SyncManager) Resolve(ctx context.Context, action models.SyncAction) error {
	if !m.configured || m.userID == 0 {
		return ErrNotSignedIn
	}

	m.mu.Lock()
	if m.state.SyncComplete {
		m.mu.Unlock()
		return ErrSyncAlreadyResolved
	}
	if m.state.Syncing {
		m.mu.Unlock()
		return ErrSyncInFlight
	}
	if !actionOffered(m.offered, action) {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrActionNotOffered, action)
	}
	m.state.Syncing = true
	isNewUser := m.state.IsNewUser
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.state.Syncing = false
		m.mu.Unlock()
	}()

	var err error
	switch action {
	case models.SyncActionUpload:
		err = m.upload(ctx)
	case models.SyncActionDownload:
		err = m.download(ctx)
	case models.SyncActionMerge:
		err = m.merge(ctx)
	case models.SyncActionCancel:
		// a new user is marked as "seen" so future sign-ins classify as
		// returning; no data moves
		if isNewUser {
			err = m.writeMetadata(ctx)
		}
	default:
		return fmt.Errorf("%w: %s", ErrActionNotOffered, action)
	}

	if err != nil {
		m.logger.Err(err).Str("action", string(action)).Msg("bulk sync action failed")
		return mapSyncError(err)
	}

	m.complete(ctx)
	m.logger.Info().Str("action", string(action)).Msg("sync decision resolved")
	return nil
}

func actionOffered(offered []models.SyncAction, action models.SyncAction) bool {
	for _, a := range offered {
		if a == action {
			return true
		}
	}
	return false
}

// ── classification ──────────────────────────────────────────────────────────

func (m *SyncManager) classifyNewUser(ctx context.Context) (bool, error) {
	_, err := m.remote.GetUserMeta(ctx)
	if errors.Is(err, adapter.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read user metadata: %w", err)
	}
	return false, nil
}

func (m *SyncManager) classifyLocalData(ctx context.Context) (bool, error) {
	quizzes, err := readLocalRecords[models.Quiz](ctx, m.local, models.CollectionQuizzes)
	if err != nil {
		return false, err
	}
	if len(WithoutDefaultQuiz(quizzes)) > 0 {
		return true, nil
	}

	for _, collection := range []string{models.CollectionSessions, models.CollectionFlashcards} {
		docs, err := m.local.GetCollection(ctx, collection)
		if err != nil {
			return false, err
		}
		if len(docs) > 0 {
			return true, nil
		}
	}

	settings, err := m.readLocalSettings(ctx)
	if err != nil {
		return false, err
	}
	return !settings.IsDefault(), nil
}

func (m *SyncManager) classifyCloudData(ctx context.Context) (bool, error) {
	// short-circuits on the first non-empty collection
	for _, collection := range models.Collections {
		docs, err := m.remote.ListCollection(ctx, collection)
		if err != nil {
			return false, err
		}
		if len(docs) > 0 {
			return true, nil
		}
	}

	_, err := m.remote.GetDocument(ctx, models.CollectionSettings, models.SettingsDocumentID)
	if errors.Is(err, adapter.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ── bulk actions ────────────────────────────────────────────────────────────

// upload writes every local non-default record of all collections to the
// cloud in one batch, overwrites the cloud settings document and advances the
// metadata marker.
func (m *SyncManager) upload(ctx context.Context) error {
	entries := make([]models.BatchWriteEntry, 0, 64)

	quizzes, err := readLocalRecords[models.Quiz](ctx, m.local, models.CollectionQuizzes)
	if err != nil {
		return fmt.Errorf("read local quizzes: %w", err)
	}
	quizEntries, err := collectionEntries(models.CollectionQuizzes, WithoutDefaultQuiz(quizzes))
	if err != nil {
		return err
	}
	entries = append(entries, quizEntries...)

	sessions, err := readLocalRecords[models.QuizSession](ctx, m.local, models.CollectionSessions)
	if err != nil {
		return fmt.Errorf("read local sessions: %w", err)
	}
	sessionEntries, err := collectionEntries(models.CollectionSessions, sessions)
	if err != nil {
		return err
	}
	entries = append(entries, sessionEntries...)

	decks, err := readLocalRecords[models.FlashcardDeck](ctx, m.local, models.CollectionFlashcards)
	if err != nil {
		return fmt.Errorf("read local flashcard decks: %w", err)
	}
	deckEntries, err := collectionEntries(models.CollectionFlashcards, decks)
	if err != nil {
		return err
	}
	entries = append(entries, deckEntries...)

	if len(entries) > 0 {
		if err = m.remote.BatchWrite(ctx, models.BatchWriteRequest{Entries: entries, Length: len(entries)}); err != nil {
			return fmt.Errorf("batch upload: %w", err)
		}
	}

	if err = m.pushSettings(ctx); err != nil {
		return err
	}

	return m.writeMetadata(ctx)
}

// download replaces the whole local state with the cloud copy. Local-only
// records are dropped deliberately; that is what the user chose.
func (m *SyncManager) download(ctx context.Context) error {
	for _, collection := range models.Collections {
		docs, err := m.remote.ListCollection(ctx, collection)
		if err != nil {
			return fmt.Errorf("list remote %s: %w", collection, err)
		}
		if err = m.local.ReplaceCollection(ctx, collection, docs); err != nil {
			return fmt.Errorf("replace local %s: %w", collection, err)
		}
	}

	doc, err := m.remote.GetDocument(ctx, models.CollectionSettings, models.SettingsDocumentID)
	switch {
	case err == nil:
		settings, decodeErr := m.decodeRemoteSettings(doc)
		if decodeErr != nil {
			return fmt.Errorf("decode remote settings: %w", decodeErr)
		}
		restored, encodeErr := encodeSettings(settings)
		if encodeErr != nil {
			return encodeErr
		}
		if err = m.local.SaveDocument(ctx, models.CollectionSettings, restored); err != nil {
			return fmt.Errorf("replace local settings: %w", err)
		}
	case errors.Is(err, adapter.ErrNotFound):
		// no cloud settings: local copy stays
	default:
		return fmt.Errorf("read remote settings: %w", err)
	}

	return m.writeMetadata(ctx)
}

// merge reconciles every collection pair (remote wins per key, local-only
// records preserved), writes the union back to the cloud so both sides end up
// identical, and overlays settings with local precedence.
func (m *SyncManager) merge(ctx context.Context) error {
	entries := make([]models.BatchWriteEntry, 0, 64)

	quizEntries, err := mergeCollection[models.Quiz](ctx, m, models.CollectionQuizzes, WithoutDefaultQuiz)
	if err != nil {
		return err
	}
	entries = append(entries, quizEntries...)

	sessionEntries, err := mergeCollection[models.QuizSession](ctx, m, models.CollectionSessions, nil)
	if err != nil {
		return err
	}
	entries = append(entries, sessionEntries...)

	deckEntries, err := mergeCollection[models.FlashcardDeck](ctx, m, models.CollectionFlashcards, nil)
	if err != nil {
		return err
	}
	entries = append(entries, deckEntries...)

	if len(entries) > 0 {
		if err = m.remote.BatchWrite(ctx, models.BatchWriteRequest{Entries: entries, Length: len(entries)}); err != nil {
			return fmt.Errorf("batch write merged records: %w", err)
		}
	}

	if err = m.mergeSettings(ctx); err != nil {
		return err
	}

	return m.writeMetadata(ctx)
}

// mergeCollection reconciles one local/remote collection pair: the merged
// result replaces the local copy and is returned as batch entries for the
// cloud write-back.
func mergeCollection[T models.Keyed](
	ctx context.Context,
	m *SyncManager,
	collection string,
	filter func([]T) []T,
) ([]models.BatchWriteEntry, error) {
	remoteDocs, err := m.remote.ListCollection(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list remote %s: %w", collection, err)
	}
	remote, err := DecodeRecords[T](remoteDocs)
	if err != nil {
		return nil, fmt.Errorf("decode remote %s: %w", collection, err)
	}

	local, err := readLocalRecords[T](ctx, m.local, collection)
	if err != nil {
		return nil, fmt.Errorf("read local %s: %w", collection, err)
	}
	if filter != nil {
		local = filter(local)
	}

	merged := MergeCollections(local, remote)

	mergedDocs, err := EncodeRecords(merged)
	if err != nil {
		return nil, fmt.Errorf("encode merged %s: %w", collection, err)
	}
	if err = m.local.ReplaceCollection(ctx, collection, mergedDocs); err != nil {
		return nil, fmt.Errorf("replace local %s: %w", collection, err)
	}

	entries := make([]models.BatchWriteEntry, 0, len(mergedDocs))
	for _, doc := range mergedDocs {
		entries = append(entries, models.BatchWriteEntry{Collection: collection, Document: doc})
	}
	return entries, nil
}

func (m *SyncManager) mergeSettings(ctx context.Context) error {
	local, err := m.readLocalSettings(ctx)
	if err != nil {
		return fmt.Errorf("read local settings: %w", err)
	}

	merged := local
	doc, err := m.remote.GetDocument(ctx, models.CollectionSettings, models.SettingsDocumentID)
	switch {
	case err == nil:
		cloud, decodeErr := m.decodeRemoteSettings(doc)
		if decodeErr != nil {
			return fmt.Errorf("decode remote settings: %w", decodeErr)
		}
		merged, err = MergeSettings(local, cloud)
		if err != nil {
			return fmt.Errorf("merge settings: %w", err)
		}
	case errors.Is(err, adapter.ErrNotFound):
		// nothing in the cloud yet, local copy becomes the merged result
	default:
		return fmt.Errorf("read remote settings: %w", err)
	}

	mergedDoc, err := encodeSettings(merged)
	if err != nil {
		return err
	}
	if err = m.local.SaveDocument(ctx, models.CollectionSettings, mergedDoc); err != nil {
		return fmt.Errorf("replace local settings: %w", err)
	}

	return m.writeSettings(ctx, merged)
}

func (m *SyncManager) pushSettings(ctx context.Context) error {
	settings, err := m.readLocalSettings(ctx)
	if err != nil {
		return fmt.Errorf("read local settings: %w", err)
	}
	return m.writeSettings(ctx, settings)
}

func (m *SyncManager) writeSettings(ctx context.Context, settings models.AppSettings) error {
	outgoing := settings
	if m.prepareSettings != nil {
		prepared, err := m.prepareSettings(settings)
		if err != nil {
			return fmt.Errorf("prepare settings: %w", err)
		}
		outgoing = prepared
	}

	doc, err := encodeSettings(outgoing)
	if err != nil {
		return err
	}
	if err = m.remote.SetDocument(ctx, models.CollectionSettings, doc, false); err != nil {
		return fmt.Errorf("write remote settings: %w", err)
	}
	return nil
}

func (m *SyncManager) writeMetadata(ctx context.Context) error {
	now := time.Now().UTC()
	if err := m.remote.SetUserMeta(ctx, models.UserMeta{CreatedAt: now, LastSync: now}); err != nil {
		return fmt.Errorf("write user metadata: %w", err)
	}
	return nil
}

// decodeRemoteSettings turns a cloud settings document back into its plaintext
// form. Skipping the restore hook here would overlay ciphertext into the
// merged result and then encrypt it a second time on the write-back.
func (m *SyncManager) decodeRemoteSettings(doc models.Document) (models.AppSettings, error) {
	settings, err := decodeSettings(doc)
	if err != nil {
		return models.AppSettings{}, err
	}
	if m.restoreSettings != nil {
		return m.restoreSettings(settings)
	}
	return settings, nil
}

func (m *SyncManager) readLocalSettings(ctx context.Context) (models.AppSettings, error) {
	doc, err := m.local.GetDocument(ctx, models.CollectionSettings, models.SettingsDocumentID)
	if errors.Is(err, store.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.AppSettings{}, err
	}
	return decodeSettings(doc)
}

// ── completion ──────────────────────────────────────────────────────────────

// completeWithoutDialog resolves the session silently. For a new user the
// metadata marker is still written, best-effort, so the next sign-in
// classifies as returning.
func (m *SyncManager) completeWithoutDialog(ctx context.Context, writeMeta bool) SyncDecision {
	if writeMeta {
		if err := m.writeMetadata(ctx); err != nil {
			m.logger.Err(err).Msg("failed to write user metadata on auto-complete")
		}
	}
	m.complete(ctx)

	m.mu.Lock()
	decision := SyncDecision{State: m.state}
	m.mu.Unlock()
	return decision
}

func (m *SyncManager) complete(ctx context.Context) {
	m.mu.Lock()
	already := m.state.SyncComplete
	m.state.SyncComplete = true
	m.mu.Unlock()

	if !already && m.onComplete != nil {
		m.onComplete(ctx)
	}
}

// ── shared read helpers ─────────────────────────────────────────────────────

func readLocalRecords[T models.Keyed](ctx context.Context, local store.LocalDocumentRepository, collection string) ([]T, error) {
	docs, err := local.GetCollection(ctx, collection)
	if err != nil {
		return nil, err
	}
	return DecodeRecords[T](docs)
}

func collectionEntries[T models.Keyed](collection string, records []T) ([]models.BatchWriteEntry, error) {
	docs, err := EncodeRecords(records)
	if err != nil {
		return nil, err
	}
	entries := make([]models.BatchWriteEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, models.BatchWriteEntry{Collection: collection, Document: doc})
	}
	return entries, nil
}
