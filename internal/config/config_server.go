package config

import (
	"fmt"
	"time"
)

// ServerConfig is the narrow configuration view consumed by the server
// binary, assembled from [StructuredConfig].
type ServerConfig struct {
	// App contains application-level settings (keys, token parameters).
	App App
	// Storage contains the database connection settings.
	Storage Storage
	// Server contains the listen address and timeouts.
	Server Server
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}
	if serverCfg.App.TokenDuration <= 0 {
		serverCfg.App.TokenDuration = 24 * time.Hour
	}
	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = 30 * time.Second
	}

	return serverCfg, serverCfg.validate()
}
