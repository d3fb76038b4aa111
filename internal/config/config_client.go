package config

import (
	"fmt"
	"time"
)

// Default client settings applied when neither environment, flags, nor the
// JSON file provide a value.
const (
	DefaultServerURL        = "http://localhost:8080"
	DefaultLocalDBPath      = "study-keeper.db"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultDebounceInterval = 2 * time.Second
)

// ClientConfig is the narrow configuration view consumed by the device-side
// binary, assembled from [StructuredConfig].
type ClientConfig struct {
	// ServerURL is the base URL of the remote document store.
	ServerURL string
	// LocalDBPath is the SQLite file backing the on-device store.
	LocalDBPath string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// DebounceInterval is the continuous sync engines' push quiet period.
	DebounceInterval time.Duration
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Missing values fall back to the defaults
// above so the client runs out of the box against a local server.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerURL:        cfg.Client.ServerURL,
		LocalDBPath:      cfg.Client.LocalDBPath,
		RequestTimeout:   cfg.Client.RequestTimeout,
		DebounceInterval: cfg.Client.DebounceInterval,
	}
	if clientCfg.ServerURL == "" {
		clientCfg.ServerURL = DefaultServerURL
	}
	if clientCfg.LocalDBPath == "" {
		clientCfg.LocalDBPath = DefaultLocalDBPath
	}
	if clientCfg.RequestTimeout <= 0 {
		clientCfg.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.DebounceInterval <= 0 {
		clientCfg.DebounceInterval = DefaultDebounceInterval
	}

	return clientCfg, clientCfg.validate()
}
