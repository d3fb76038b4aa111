package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-keeper/internal/adapter"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.RemoteStore
}

func NewClientAuthService(sessions store.LocalSessionRepository, remote adapter.RemoteStore) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: remote}
}

func (a *clientAuthService) Register(ctx context.Context, login, password, name string) (store.LocalSession, error) {
	if login == "" || password == "" {
		return store.LocalSession{}, ErrInvalidDataProvided
	}

	user, err := a.adapter.Register(ctx, models.User{Login: login, Password: password, Name: name})
	if err != nil {
		return store.LocalSession{}, fmt.Errorf("register on server: %w", mapSyncError(err))
	}

	session := store.LocalSession{
		UserID:  user.UserID,
		Login:   user.Login,
		Token:   a.adapter.Token(),
		SavedAt: time.Now().UTC(),
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return store.LocalSession{}, fmt.Errorf("persist session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Login(ctx context.Context, login, password string) (store.LocalSession, error) {
	if login == "" || password == "" {
		return store.LocalSession{}, ErrInvalidDataProvided
	}

	token, err := a.adapter.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return store.LocalSession{}, fmt.Errorf("login on server: %w", mapSyncError(err))
	}

	session := store.LocalSession{
		UserID:  token.UserID,
		Login:   login,
		Token:   a.adapter.Token(),
		SavedAt: time.Now().UTC(),
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return store.LocalSession{}, fmt.Errorf("persist session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (store.LocalSession, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return store.LocalSession{}, err
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	a.adapter.SetToken("")
	return nil
}
