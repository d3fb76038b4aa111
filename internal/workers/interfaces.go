// Package workers provides abstractions for managing long-running background
// components with an explicit enable/teardown lifecycle.
// It defines the Worker interface and a Workers aggregate that starts and
// stops a group of workers in a unified way.
package workers

import "context"

// Worker is a long-running background component gated behind an explicit
// enable call. Both continuous sync engines satisfy this interface.
//
// Implementations are expected to spawn their goroutines on Enable and to
// make Close idempotent.
type Worker interface {
	// Enable opens the worker's gate and starts its background activity.
	Enable(ctx context.Context)

	// Close tears the worker down and releases its resources.
	Close()
}
