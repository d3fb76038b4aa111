// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via caarlos0/env. Fields
// are mapped through the `env` and `envPrefix` tags on [StructuredConfig] and
// its nested types; both the server and the device client funnel their
// configuration through this one entry point.
//
// Returns a wrapped error if env.Parse fails (a required variable is missing
// or a value cannot be converted to the target type).
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
