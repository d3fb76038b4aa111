package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-study-keeper/internal/adapter"
	"github.com/MKhiriev/go-study-keeper/internal/config"
	"github.com/MKhiriev/go-study-keeper/internal/crypto"
	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/internal/workers"
	"github.com/MKhiriev/go-study-keeper/models"
)

// ClientServices groups the device-side services shared across sessions.
type ClientServices struct {
	AuthService ClientAuthService
	KeyChain    crypto.KeyChainService

	storages *store.ClientStorages
	remote   adapter.RemoteStore
	cfg      config.Client
	logger   *logger.Logger
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, cfg config.Client, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(storages.SessionRepository, remote),
		KeyChain:    crypto.NewKeyChainService(),
		storages:    storages,
		remote:      remote,
		cfg:         cfg,
		logger:      log,
	}
}

// LocalDocuments exposes the on-device document store for UI read and edit
// flows. Mutations made through it must be followed by a
// [SyncSession.NotifyLocalChange] so the owning engine picks them up.
func (s *ClientServices) LocalDocuments() store.LocalDocumentRepository {
	return s.storages.DocumentRepository
}

// SyncSession is the per-sign-in sync surface: the one-time reconciliation
// manager plus one continuous engine per collection and one for settings. The
// engines stay gated until the manager completes, then run for the rest of
// the session.
type SyncSession struct {
	Manager *SyncManager

	Quizzes    *CollectionEngine[models.Quiz]
	Sessions   *CollectionEngine[models.QuizSession]
	Flashcards *CollectionEngine[models.FlashcardDeck]
	Settings   *SettingsEngine

	engines *workers.Workers
	logger  *logger.Logger
}

// NewSyncSession wires a sync session for the signed-in user. The manager's
// completion hook enables every engine, enforcing the mutual exclusion
// between the one-time bulk action and continuous sync.
func (s *ClientServices) NewSyncSession(userID int64) *SyncSession {
	uid := strconv.FormatInt(userID, 10)

	prepare := func(settings models.AppSettings) (models.AppSettings, error) {
		if settings.GeminiAPIKey == "" {
			return settings, nil
		}
		cipher, err := s.KeyChain.EncryptAPIKey(settings.GeminiAPIKey, uid)
		if err != nil {
			return models.AppSettings{}, err
		}
		settings.GeminiAPIKeyDigest = s.KeyChain.HashAPIKey(settings.GeminiAPIKey)
		settings.GeminiAPIKey = cipher
		return settings, nil
	}
	restore := func(settings models.AppSettings) (models.AppSettings, error) {
		if settings.GeminiAPIKey == "" {
			return settings, nil
		}
		plain, err := s.KeyChain.DecryptAPIKey(settings.GeminiAPIKey, uid)
		if err != nil {
			// a blob encrypted on another account is unusable here, drop it
			s.logger.Err(err).Msg("failed to decrypt synced API key, dropping it")
			settings.GeminiAPIKey = ""
			return settings, nil
		}
		settings.GeminiAPIKey = plain
		return settings, nil
	}

	session := &SyncSession{
		Quizzes: NewCollectionEngine[models.Quiz](
			models.CollectionQuizzes, s.storages.DocumentRepository, s.remote, s.cfg.DebounceInterval, s.logger,
		).WithExclude(func(q models.Quiz) bool {
			return q.ID == models.DefaultQuizID || q.IsDefault
		}),
		Sessions: NewCollectionEngine[models.QuizSession](
			models.CollectionSessions, s.storages.DocumentRepository, s.remote, s.cfg.DebounceInterval, s.logger,
		),
		Flashcards: NewCollectionEngine[models.FlashcardDeck](
			models.CollectionFlashcards, s.storages.DocumentRepository, s.remote, s.cfg.DebounceInterval, s.logger,
		),
		Settings: NewSettingsEngine(
			s.storages.DocumentRepository, s.remote, s.cfg.DebounceInterval, s.logger,
		).WithBoundaryHooks(prepare, restore),
		logger: s.logger,
	}
	session.engines = workers.New(session.Quizzes, session.Sessions, session.Flashcards, session.Settings)

	session.Manager = NewSyncManager(s.storages.DocumentRepository, s.remote, userID, true, s.logger).
		WithSettingsHooks(prepare, restore).
		WithOnComplete(session.engines.Enable)

	return session
}

// Close tears every engine down; called on sign-out or app shutdown.
func (s *SyncSession) Close() {
	s.engines.Close()
}

// NotifyLocalChange fans a local-change signal out to the engine owning the
// given collection.
func (s *SyncSession) NotifyLocalChange(ctx context.Context, collection string) {
	switch collection {
	case models.CollectionQuizzes:
		s.Quizzes.NotifyLocalChange(ctx)
	case models.CollectionSessions:
		s.Sessions.NotifyLocalChange(ctx)
	case models.CollectionFlashcards:
		s.Flashcards.NotifyLocalChange(ctx)
	case models.CollectionSettings:
		s.Settings.NotifyLocalChange(ctx)
	default:
		s.logger.Warn().Str("collection", collection).Msg("local change for unknown collection")
	}
}
