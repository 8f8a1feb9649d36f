// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig holds the runtime settings of the notesync client.
//
// Every field can be supplied through an environment variable prefixed
// with [EnvPrefix] or through a command-line flag. Environment values win.
type ClientConfig struct {
	Storage Storage
	Vault   Vault
	Adapter Adapter
	Log     Log
	Engine  Engine
}

// Storage configures the local SQLite sync store.
type Storage struct {
	// DSN is the go-sqlite3 data source name (usually a file path).
	DSN string `env:"STORE_DSN" validate:"required"`
}

// Vault configures the note directory and the sync document that lives
// next to it.
type Vault struct {
	Dir string `env:"VAULT_DIR" validate:"required"`

	// SyncConfigPath points to the persisted [SyncConfig] document.
	// Defaults to <Dir>/.notesync.json.
	SyncConfigPath string `env:"SYNC_CONFIG"`
}

// Adapter configures the HTTP transport to the sync server.
type Adapter struct {
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gt=0s"`

	// HashKey, when set, signs request bodies (HashSHA256 header).
	HashKey string `env:"HASH_KEY"`

	// Token is sent as a bearer token when non-empty.
	Token string `env:"TOKEN"`
}

// Log configures the rotating client log file.
type Log struct {
	File  string `env:"LOG_FILE"`
	Level string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

// Engine holds tunables for the sync coordinator.
type Engine struct {
	// AutoResolve lets the coordinator settle conflicts whose two edits
	// happened within a few seconds of each other without user input.
	AutoResolve bool `env:"AUTO_RESOLVE"`

	// MaxPullPages bounds how many pull pages a single cycle fetches.
	MaxPullPages int `env:"MAX_PULL_PAGES" validate:"gte=0"`
}

// ServerConfig holds the settings of the reference sync server.
type ServerConfig struct {
	Address  string        `env:"SERVER_ADDRESS" validate:"required,hostname_port"`
	HashKey  string        `env:"HASH_KEY"`
	Token    string        `env:"TOKEN"`
	PageSize int           `env:"PAGE_SIZE" validate:"gte=0"`
	Timeout  time.Duration `env:"SERVER_TIMEOUT"`
	LogLevel string        `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxPullPages   = 100
	DefaultServerAddress  = "localhost:8080"
	DefaultPageSize       = 100
	syncDocumentName      = ".notesync.json"
)

// GetClientConfig assembles a [ClientConfig] from the environment, the
// supplied flag values and the built-in defaults, in that order of
// precedence, and validates the result.
func GetClientConfig(flags *ClientConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder[ClientConfig]().
		withEnv().
		withFlags(flags).
		withDefaults(defaultClientConfig()).
		build()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	if cfg.Vault.SyncConfigPath == "" {
		cfg.Vault.SyncConfigPath = SyncDocumentPath(cfg.Vault.Dir)
	}

	return cfg, nil
}

// GetServerConfig is the server-side counterpart of [GetClientConfig].
func GetServerConfig(flags *ServerConfig) (*ServerConfig, error) {
	cfg, err := newConfigBuilder[ServerConfig]().
		withEnv().
		withFlags(flags).
		withDefaults(&ServerConfig{Address: DefaultServerAddress, PageSize: DefaultPageSize}).
		build()
	if err != nil {
		return nil, fmt.Errorf("error building server config: %w", err)
	}

	return cfg, nil
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Engine:  Engine{MaxPullPages: DefaultMaxPullPages},
		Log:     Log{Level: "info"},
	}
}
