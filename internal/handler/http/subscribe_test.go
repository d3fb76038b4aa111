// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/service"
	"github.com/MKhiriev/go-study-keeper/models"
	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSubscribeServer starts a full router over httptest so the WebSocket
// upgrade goes through the real middleware chain.
func newSubscribeServer(t *testing.T, docs service.DocumentService) (*Handler, *httptest.Server) {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return tokenWithSubject("1"), nil
		},
	}
	h := NewHandler(&service.Services{AuthService: auth, DocumentService: docs}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return h, srv
}

func dialSubscribe(t *testing.T, srv *httptest.Server, collection string) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/api/subscribe/" + collection
	headers := http.Header{}
	headers.Set("Authorization", "Bearer test-token")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, wsURL, &websocket.DialOptions{HTTPHeader: headers})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	return conn
}

func readSnapshotFrame(t *testing.T, conn *websocket.Conn) models.SnapshotEvent {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var event models.SnapshotEvent
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestSubscribe_SendsInitialSnapshotOnConnect(t *testing.T) {
	docs := &mockDocumentService{
		listFn: func(_ context.Context, userID int64, collection string) ([]models.Document, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, "quizzes", collection)
			return []models.Document{testDoc("q1")}, nil
		},
	}
	_, srv := newSubscribeServer(t, docs)

	conn := dialSubscribe(t, srv, "quizzes")

	event := readSnapshotFrame(t, conn)
	assert.Equal(t, "quizzes", event.Collection)
	require.Len(t, event.Documents, 1)
	assert.Equal(t, "q1", event.Documents[0].ID)
}

func TestSubscribe_StreamsBroadcastsAfterConnect(t *testing.T) {
	docs := &mockDocumentService{
		listFn: func(_ context.Context, _ int64, _ string) ([]models.Document, error) {
			return nil, nil
		},
	}
	h, srv := newSubscribeServer(t, docs)

	conn := dialSubscribe(t, srv, "sessions")

	// Consume the initial empty snapshot first.
	initial := readSnapshotFrame(t, conn)
	assert.Empty(t, initial.Documents)

	// Wait for the server-side goroutine to attach before broadcasting.
	deadline := time.Now().Add(2 * time.Second)
	for {
		h.hub.mu.Lock()
		attached := len(h.hub.subs[hubKey{userID: 1, collection: "sessions"}]) > 0
		h.hub.mu.Unlock()
		if attached {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("subscriber never attached to the hub")
		}
		time.Sleep(5 * time.Millisecond)
	}

	h.hub.broadcast(1, "sessions", []models.Document{testDoc("s1")})

	event := readSnapshotFrame(t, conn)
	assert.Equal(t, "sessions", event.Collection)
	require.Len(t, event.Documents, 1)
	assert.Equal(t, "s1", event.Documents[0].ID)
}

func TestSubscribe_RejectsMissingToken(t *testing.T) {
	docs := &mockDocumentService{
		listFn: func(_ context.Context, _ int64, _ string) ([]models.Document, error) {
			return nil, nil
		},
	}
	_, srv := newSubscribeServer(t, docs)

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/api/subscribe/quizzes"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, resp, err := websocket.Dial(ctx, wsURL, nil)
	if conn != nil {
		conn.Close(websocket.StatusNormalClosure, "")
	}
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
