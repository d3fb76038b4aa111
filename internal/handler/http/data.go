// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-study-keeper/internal/app"
	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/store"
	"github.com/MKhiriev/go-study-keeper/internal/utils"
	"github.com/MKhiriev/go-study-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")

	docs, err := h.services.DocumentService.List(ctx, userID, collection)
	if err != nil {
		log.Err(err).Str("collection", collection).Msg("error listing collection")
		http.Error(w, "error listing collection", statusFromError(err))
		return
	}

	response := models.ListDocumentsResponse{Documents: docs, Length: len(docs)}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing list response")
	}
}

func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")
	docID := chi.URLParam(r, "id")

	doc, err := h.services.DocumentService.Get(ctx, userID, collection, docID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, app.MsgDocumentNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("collection", collection).Str("doc_id", docID).Msg("error getting document")
		http.Error(w, "error getting document", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, doc, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing document response")
	}
}

func (h *Handler) setDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")
	docID := chi.URLParam(r, "id")

	var req models.SetDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	// The URL segment is authoritative: a mismatching body ID is a client bug.
	if req.Document.ID != "" && req.Document.ID != docID {
		http.Error(w, app.MsgDocumentIDMismatch, http.StatusBadRequest)
		return
	}
	req.Document.ID = docID

	if err := h.services.DocumentService.Set(ctx, userID, collection, req.Document, req.Merge); err != nil {
		log.Err(err).Str("collection", collection).Str("doc_id", docID).Msg("error setting document")
		http.Error(w, "error setting document", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)

	h.publishSnapshot(ctx, userID, collection)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	collection := chi.URLParam(r, "collection")
	docID := chi.URLParam(r, "id")

	if err := h.services.DocumentService.Delete(ctx, userID, collection, docID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, app.MsgDocumentNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Str("collection", collection).Str("doc_id", docID).Msg("error deleting document")
		http.Error(w, "error deleting document", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)

	h.publishSnapshot(ctx, userID, collection)
}

func (h *Handler) batchWrite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.BatchWriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if req.Length != 0 && req.Length != len(req.Entries) {
		http.Error(w, app.MsgBatchLengthMismatch, http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.BatchWrite(ctx, userID, req.Entries); err != nil {
		log.Err(err).Int("entries", len(req.Entries)).Msg("error applying batch write")
		http.Error(w, "error applying batch write", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)

	// One notification per touched collection, each carrying the full
	// post-write state.
	touched := make(map[string]struct{})
	for _, entry := range req.Entries {
		touched[entry.Collection] = struct{}{}
	}
	for collection := range touched {
		h.publishSnapshot(ctx, userID, collection)
	}
}

func (h *Handler) getUserMeta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	meta, err := h.services.DocumentService.GetUserMeta(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, app.MsgUserMetaNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error getting user meta")
		http.Error(w, "error getting user meta", statusFromError(err))
		return
	}

	if _, err := utils.WriteJSON(w, meta, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing user meta response")
	}
}

func (h *Handler) setUserMeta(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var meta models.UserMeta
	if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.DocumentService.SetUserMeta(ctx, userID, meta); err != nil {
		log.Err(err).Msg("error setting user meta")
		http.Error(w, "error setting user meta", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
