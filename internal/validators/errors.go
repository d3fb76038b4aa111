// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrEmptyBody         = errors.New("document body is required")
	ErrInvalidCollection = errors.New("invalid collection name")
	ErrNoBatchEntries    = errors.New("batch entries list cannot be empty")
	ErrEmptyLogin        = errors.New("login is required")
	ErrEmptyPassword     = errors.New("password is required")
)
