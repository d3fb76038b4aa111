// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/models"
)

// hubKey addresses one live feed: every subscriber of a (user, collection)
// pair receives the same snapshot events.
type hubKey struct {
	userID     int64
	collection string
}

// hubSubscriber is one attached WebSocket client. Events are delivered over a
// buffered channel; a subscriber that cannot keep up loses intermediate
// snapshots, which is safe because every event carries the full collection
// state.
type hubSubscriber struct {
	events chan models.SnapshotEvent
}

// snapshotHub fans collection snapshots out to live subscribers. Mutating
// handlers publish after every successful write, so a device observes changes
// made by any other device of the same user with no polling.
type snapshotHub struct {
	mu     sync.Mutex
	subs   map[hubKey]map[*hubSubscriber]struct{}
	logger *logger.Logger
}

func newSnapshotHub(logger *logger.Logger) *snapshotHub {
	return &snapshotHub{
		subs:   make(map[hubKey]map[*hubSubscriber]struct{}),
		logger: logger,
	}
}

func (hub *snapshotHub) subscribe(userID int64, collection string) *hubSubscriber {
	sub := &hubSubscriber{events: make(chan models.SnapshotEvent, 8)}
	key := hubKey{userID: userID, collection: collection}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	if hub.subs[key] == nil {
		hub.subs[key] = make(map[*hubSubscriber]struct{})
	}
	hub.subs[key][sub] = struct{}{}

	return sub
}

func (hub *snapshotHub) unsubscribe(userID int64, collection string, sub *hubSubscriber) {
	key := hubKey{userID: userID, collection: collection}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	if set, ok := hub.subs[key]; ok {
		if _, attached := set[sub]; attached {
			delete(set, sub)
			close(sub.events)
		}
		if len(set) == 0 {
			delete(hub.subs, key)
		}
	}
}

func (hub *snapshotHub) broadcast(userID int64, collection string, docs []models.Document) {
	event := models.SnapshotEvent{Collection: collection, Documents: docs}
	key := hubKey{userID: userID, collection: collection}

	hub.mu.Lock()
	defer hub.mu.Unlock()
	for sub := range hub.subs[key] {
		select {
		case sub.events <- event:
		default:
			// drop the oldest queued snapshot, the newest one supersedes it
			select {
			case <-sub.events:
			default:
			}
			select {
			case sub.events <- event:
			default:
			}
		}
	}
}

// publishSnapshot reads the current collection state and broadcasts it to
// every live subscriber of the user. Called by mutating handlers after the
// write committed; a failed read only skips the notification, the write
// itself already succeeded.
func (h *Handler) publishSnapshot(ctx context.Context, userID int64, collection string) {
	docs, err := h.services.DocumentService.List(ctx, userID, collection)
	if err != nil {
		h.logger.Err(err).
			Str("collection", collection).
			Int64("user_id", userID).
			Msg("failed to build snapshot for live subscribers")
		return
	}

	h.hub.broadcast(userID, collection, docs)
}
