// Package config loads, merges, and validates the application configuration
// for both the server and the client binaries.
//
// Values are collected from environment variables, command-line flags, and an
// optional JSON file, then merged with non-zero-field precedence. Server and
// client code consume narrow views ([ServerConfig], [ClientConfig]) built
// from the shared [StructuredConfig].
package config
