// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/utils"
	"github.com/MKhiriev/go-study-keeper/models"
	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
)

// subscribe upgrades the request to a WebSocket and streams collection
// snapshots to the client until it disconnects. Each frame is a JSON-encoded
// [models.SnapshotEvent] carrying the full collection state; the first frame
// is sent immediately so a client that connects between its initial pull and
// a concurrent mutation does not miss it.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream terminated")

	sub := h.hub.subscribe(userID, collection)
	defer h.hub.unsubscribe(userID, collection, sub)

	// CloseRead discards incoming frames (the stream is one-way) and cancels
	// the returned context when the client goes away.
	ctx := conn.CloseRead(r.Context())

	docs, err := h.services.DocumentService.List(ctx, userID, collection)
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("error building initial snapshot")
		conn.Close(websocket.StatusInternalError, "failed to read collection")
		return
	}
	initial := models.SnapshotEvent{Collection: collection, Documents: docs}
	if err := writeSnapshotFrame(ctx, conn, initial); err != nil {
		log.Err(err).Str("collection", collection).Msg("error sending initial snapshot")
		return
	}

	log.Debug().
		Str("collection", collection).
		Int64("user_id", userID).
		Msg("live subscription attached")

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case event, open := <-sub.events:
			if !open {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			if err := writeSnapshotFrame(ctx, conn, event); err != nil {
				log.Err(err).Str("collection", collection).Msg("error sending snapshot frame")
				return
			}
		}
	}
}

func writeSnapshotFrame(ctx context.Context, conn *websocket.Conn, event models.SnapshotEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
