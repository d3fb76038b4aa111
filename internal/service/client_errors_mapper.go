// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-keeper/internal/adapter"
)

// mapSyncError translates the adapter's transport error into the sync error
// taxonomy surfaced to the user. Each class carries its own actionable
// message; anything unrecognised degrades to a generic wrapped failure.
func mapSyncError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBlockedRequest):
		return fmt.Errorf("%w: %w", ErrSyncBlocked, err)

	case errors.Is(err, adapter.ErrUnauthenticated):
		return fmt.Errorf("%w: %w", ErrNotSignedIn, err)

	case errors.Is(err, adapter.ErrPermissionDenied):
		return fmt.Errorf("%w: %w", ErrSyncPermissionDenied, err)

	default:
		return fmt.Errorf("%w: %w", ErrSyncFailed, err)
	}
}
