// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-study-keeper/internal/adapter"
	"github.com/MKhiriev/go-study-keeper/internal/mock"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/models"
)

func TestClientAuthService_Register_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	remote.EXPECT().
		Register(gomock.Any(), models.User{Login: "student", Password: "secret", Name: "Student"}).
		Return(models.User{UserID: 7, Login: "student", Name: "Student"}, nil)
	remote.EXPECT().Token().Return("issued-token")

	var saved store.LocalSession
	sessions.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s store.LocalSession) error {
			saved = s
			return nil
		})

	auth := NewClientAuthService(sessions, remote)
	session, err := auth.Register(context.Background(), "student", "secret", "Student")

	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "student", session.Login)
	assert.Equal(t, "issued-token", session.Token)
	assert.Equal(t, session, saved)
	assert.False(t, session.SavedAt.IsZero())
}

func TestClientAuthService_Register_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := NewClientAuthService(mock.NewMockLocalSessionRepository(ctrl), mock.NewMockRemoteStore(ctrl))

	_, err := auth.Register(context.Background(), "", "secret", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = auth.Register(context.Background(), "student", "", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Login_MapsTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	remote.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, fmt.Errorf("post login: %w", adapter.ErrBlockedRequest))

	auth := NewClientAuthService(sessions, remote)
	_, err := auth.Login(context.Background(), "student", "secret")

	assert.ErrorIs(t, err, ErrSyncBlocked)
}

func TestClientAuthService_Login_PersistsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	remote.EXPECT().
		Login(gomock.Any(), models.User{Login: "student", Password: "secret"}).
		Return(models.Token{UserID: 7}, nil)
	remote.EXPECT().Token().Return("issued-token")
	sessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(nil)

	auth := NewClientAuthService(sessions, remote)
	session, err := auth.Login(context.Background(), "student", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "issued-token", session.Token)
}

func TestClientAuthService_RestoreSession_RearmsAdapterToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	stored := store.LocalSession{UserID: 7, Login: "student", Token: "stored-token"}
	sessions.EXPECT().GetSession(gomock.Any()).Return(stored, nil)
	remote.EXPECT().SetToken("stored-token")

	auth := NewClientAuthService(sessions, remote)
	session, err := auth.RestoreSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, session)
}

func TestClientAuthService_RestoreSession_NoSavedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	sessions.EXPECT().GetSession(gomock.Any()).Return(store.LocalSession{}, store.ErrLocalSessionNotFound)

	auth := NewClientAuthService(sessions, remote)
	_, err := auth.RestoreSession(context.Background())

	assert.ErrorIs(t, err, store.ErrLocalSessionNotFound)
}

func TestClientAuthService_Logout_ClearsSessionAndToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteStore(ctrl)
	sessions := mock.NewMockLocalSessionRepository(ctrl)

	sessions.EXPECT().ClearSession(gomock.Any()).Return(nil)
	remote.EXPECT().SetToken("")

	auth := NewClientAuthService(sessions, remote)
	require.NoError(t, auth.Logout(context.Background()))
}
