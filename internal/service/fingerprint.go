// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// volatileFields are metadata keys excluded from change detection. They move
// on every save without the user having changed anything, so including them
// would make every echo of our own write look like an incoming change.
var volatileFields = map[string]struct{}{
	"updatedAt": {},
	"createdAt": {},
	"lastSync":  {},
}

// Fingerprint computes a stable content hash of any JSON-serialisable value
// with volatile metadata fields stripped at every nesting level. Two values
// that differ only in timestamps fingerprint identically.
//
// Object keys are serialised in sorted order, so the hash does not depend on
// field ordering of the input.
func Fingerprint(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("fingerprint marshal: %w", err)
	}

	var decoded any
	if err = json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("fingerprint decode: %w", err)
	}

	canonical, err := json.Marshal(stripVolatile(decoded))
	if err != nil {
		return "", fmt.Errorf("fingerprint canonicalise: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// stripVolatile walks the decoded JSON value and removes volatile keys from
// every object. Maps re-marshal with sorted keys, which makes the result
// canonical.
func stripVolatile(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for key := range volatileFields {
			delete(val, key)
		}
		for key, inner := range val {
			val[key] = stripVolatile(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = stripVolatile(inner)
		}
		return val
	default:
		return v
	}
}
