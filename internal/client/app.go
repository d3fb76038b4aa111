package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-keeper/internal/adapter"
	"github.com/MKhiriev/go-study-keeper/internal/config"
	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/service"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the device application: local SQLite storage, the remote
// store adapter and the terminal UI.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	clientCfg := config.Client{
		ServerURL:        cfg.ServerURL,
		LocalDBPath:      cfg.LocalDBPath,
		RequestTimeout:   cfg.RequestTimeout,
		DebounceInterval: cfg.DebounceInterval,
	}

	storages, err := store.NewClientStorages(clientCfg, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout,
	})

	services := service.NewClientServices(storages, remote, clientCfg, log)

	ui, err := tui.New(services, log)
	if err != nil {
		return nil, fmt.Errorf("create terminal ui: %w", err)
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run drives one full session: restore or establish a sign-in, resolve the
// one-time sync decision, then hand control to the main menu. A logout
// restarts the whole flow with a fresh session.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}
		session, err = a.tui.SignInFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	syncSession := a.services.NewSyncSession(session.UserID)
	defer syncSession.Close()

	a.resolveSyncDecision(ctx, syncSession)

	logout, err := a.tui.MainLoop(ctx, syncSession)
	if err != nil {
		return err
	}
	if logout {
		syncSession.Close()
		if err := a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Err(err).Msg("logout failed")
		}
		return a.Run()
	}

	return nil
}

// resolveSyncDecision runs the sign-in classification and, when the decision
// table offers a choice, walks the dialog until an action succeeds or the
// user cancels. Sync trouble never blocks the app: on a dead end the session
// simply proceeds without the bulk action.
func (a *App) resolveSyncDecision(ctx context.Context, syncSession *service.SyncSession) {
	decision := syncSession.Manager.Classify(ctx)

	for !syncSession.Manager.State().SyncComplete {
		action, shown, err := a.tui.SyncDecisionDialog(decision)
		if err != nil || !shown {
			return
		}

		if err := syncSession.Manager.Resolve(ctx, action); err != nil {
			a.logger.Err(err).Str("action", string(action)).Msg("sync action failed")
			continue
		}
	}
}
