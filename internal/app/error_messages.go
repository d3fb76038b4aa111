// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// study-keeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded as
	// JSON at all.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when a decoded request fails basic
	// validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgDocumentNotFound is returned when a read or delete targets a
	// document that does not exist in the collection for the current user.
	MsgDocumentNotFound = "document not found"

	// MsgUserMetaNotFound is returned when the per-user metadata marker has
	// never been written, i.e. the account has never completed a sync.
	MsgUserMetaNotFound = "user meta not found"

	// MsgDocumentIDMismatch is returned when a write carries a body whose
	// document ID contradicts the ID in the request URL.
	MsgDocumentIDMismatch = "document id in body does not match url"

	// MsgBatchLengthMismatch is returned when a batch write declares a Length
	// that does not equal the number of entries actually provided.
	MsgBatchLengthMismatch = "batch length does not match number of entries"
)
