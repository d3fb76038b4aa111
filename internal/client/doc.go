// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive device-side application runtime.
//
// It wires the local SQLite store, the remote document store adapter, the
// sync session (one-time reconciliation plus continuous engines) and the
// terminal UI into a single process lifecycle.
package client
