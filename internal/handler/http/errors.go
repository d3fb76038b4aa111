// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while parsing the "Authorization" header. Both the
// data routes and the WebSocket subscribe route go through the same auth
// middleware, so these cover every bearer-token failure mode. Match with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader: the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header is present but cannot be
	// split into scheme and token (the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the header contains the expected scheme prefix but the
	// token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
