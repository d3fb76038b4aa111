package service

import (
	"context"

	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/models"
)

// ClientAuthService defines the client-side contract for account management
// and session persistence. Implementations talk to the remote store adapter
// and keep the signed-in session durable across restarts.
type ClientAuthService interface {
	// Register creates a new account on the server, stores the issued bearer
	// token in the adapter and persists the session locally.
	Register(ctx context.Context, login, password, name string) (store.LocalSession, error)

	// Login authenticates an existing account, stores the issued bearer
	// token in the adapter and persists the session locally.
	Login(ctx context.Context, login, password string) (store.LocalSession, error)

	// RestoreSession loads the persisted session from the local store and
	// re-arms the adapter with its token. Returns
	// [store.ErrLocalSessionNotFound] when no session was saved.
	RestoreSession(ctx context.Context) (store.LocalSession, error)

	// Logout clears the persisted session and drops the adapter token.
	Logout(ctx context.Context) error
}

// Engine is the common surface of [CollectionEngine] and [SettingsEngine] as
// seen by the sync session: gate control, local-change signalling, teardown.
type Engine interface {
	Enable(ctx context.Context)
	NotifyLocalChange(ctx context.Context)
	State() EngineState
	Close()
}

// Classifier is the sign-in decision surface consumed by the UI layer.
type Classifier interface {
	Classify(ctx context.Context) SyncDecision
	Resolve(ctx context.Context, action models.SyncAction) error
	State() SyncState
}
