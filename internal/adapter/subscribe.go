package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-study-keeper/models"
	"github.com/coder/websocket"
)

// wsSubscription is the WebSocket-backed implementation of [Subscription].
// One goroutine reads frames and forwards decoded snapshot events; Close (or
// context cancellation) terminates it and closes the Snapshots channel.
type wsSubscription struct {
	conn   *websocket.Conn
	events chan models.SnapshotEvent
	cancel context.CancelFunc

	mu   sync.Mutex
	err  error
	done chan struct{}

	closeOnce sync.Once
}

func (h *httpRemoteStore) Subscribe(ctx context.Context, collection string) (Subscription, error) {
	wsURL := strings.Replace(h.client.BaseURL, "http", "ws", 1) + "/api/subscribe/" + collection

	headers := http.Header{}
	if token := h.Token(); token != "" {
		headers.Set("Authorization", "Bearer "+token)
	} else {
		return nil, ErrUnauthenticated
	}

	subCtx, cancel := context.WithCancel(ctx)
	conn, resp, err := websocket.Dial(subCtx, wsURL, &websocket.DialOptions{HTTPHeader: headers})
	if err != nil {
		cancel()
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return nil, ErrUnauthenticated
			case http.StatusForbidden:
				return nil, ErrPermissionDenied
			}
		}
		return nil, mapTransportError("subscribe dial", err)
	}

	sub := &wsSubscription{
		conn:   conn,
		events: make(chan models.SnapshotEvent, 1),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go sub.readLoop(subCtx)

	return sub, nil
}

func (s *wsSubscription) readLoop(ctx context.Context) {
	defer close(s.events)
	defer close(s.done)

	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			s.setErr(err)
			return
		}

		var event models.SnapshotEvent
		if err := json.Unmarshal(data, &event); err != nil {
			// A malformed frame ends the stream; the engine falls back to the
			// store's own reconnect policy by resubscribing.
			s.setErr(err)
			return
		}

		select {
		case s.events <- event:
		case <-ctx.Done():
			s.setErr(ctx.Err())
			return
		}
	}
}

func (s *wsSubscription) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil && !errors.Is(err, context.Canceled) {
		s.err = err
	}
}

func (s *wsSubscription) Snapshots() <-chan models.SnapshotEvent {
	return s.events
}

func (s *wsSubscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *wsSubscription) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		_ = s.conn.Close(websocket.StatusNormalClosure, "")
		<-s.done
	})
}
