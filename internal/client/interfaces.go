// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the minimal lifecycle contract of the runnable device
// application.
type Client interface {
	// Run starts the application and blocks until the user quits.
	Run() error
}
