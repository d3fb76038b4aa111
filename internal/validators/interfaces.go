// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input-validation rules enforced by the
// services before anything touches storage.
//
// The single entry point is the Validator interface: implementations accept
// an arbitrary value (document, batch entry, user) plus optional field names
// that scope validation down to the checks a caller actually needs. Services
// own a Validator instance and funnel its failures into their own sentinel
// errors, so transports never see validator internals.
package validators

import "context"

// Validator validates arbitrary input values. Implementations dispatch on the
// concrete type and may perform structural and cross-field checks.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
