// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DefaultSyncInterval is used when the document does not set sync_interval.
const DefaultSyncInterval = 30 * time.Second

// SyncConfig is the persisted sync document of a vault.
type SyncConfig struct {
	ServerURL        string   `json:"server_url" env:"SERVER_URL" validate:"required,url"`
	DeviceID         string   `json:"device_id,omitempty" env:"DEVICE_ID"`
	Enabled          bool     `json:"enabled" env:"SYNC_ENABLED"`
	LastSyncSequence int64    `json:"last_sync_sequence"`
	SyncInterval     Duration `json:"sync_interval,omitempty" env:"SYNC_INTERVAL"`
}

// Interval returns the polling period, falling back to [DefaultSyncInterval].
func (cfg *SyncConfig) Interval() time.Duration {
	if cfg == nil || cfg.SyncInterval <= 0 {
		return DefaultSyncInterval
	}
	return time.Duration(cfg.SyncInterval)
}

// DisabledReason classifies why sync is not running for a vault.
// The empty value means sync is enabled.
type DisabledReason string

const (
	ReasonNone      DisabledReason = ""
	ReasonMissing   DisabledReason = "missing"
	ReasonDisabled  DisabledReason = "disabled"
	ReasonMalformed DisabledReason = "malformed"
)

// LoadResult is returned by [LoadSyncConfig].
type LoadResult struct {
	// Config is nil when Reason is missing or malformed.
	Config *SyncConfig
	Reason DisabledReason
	// Err carries the underlying cause for diagnostics. It is never
	// meant to abort the caller.
	Err error
}

// Enabled reports whether sync may start.
func (r LoadResult) Enabled() bool {
	return r.Reason == ReasonNone && r.Config != nil
}

// SyncDocumentPath returns the default location of the sync document
// inside vaultDir.
func SyncDocumentPath(vaultDir string) string {
	return filepath.Join(vaultDir, syncDocumentName)
}

// LoadSyncConfig reads the sync document at path and overlays
// NOTESYNC_-prefixed environment variables on top of it.
//
// It never fails: a missing file, a document with enabled=false, and a
// document that cannot be decoded or validated are all reported through
// LoadResult.Reason.
func LoadSyncConfig(path string) LoadResult {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadResult{Reason: ReasonMissing, Err: fmt.Errorf("%w: %s", ErrSyncConfigNotFound, path)}
	}
	if err != nil {
		return LoadResult{Reason: ReasonMalformed, Err: fmt.Errorf("%w: %w", ErrSyncConfigMalformed, err)}
	}

	fileCfg := new(SyncConfig)
	if err = json.Unmarshal(data, fileCfg); err != nil {
		return LoadResult{Reason: ReasonMalformed, Err: fmt.Errorf("%w: %w", ErrSyncConfigMalformed, err)}
	}

	cfg, err := newConfigBuilder[SyncConfig]().
		withEnv().
		withDefaults(fileCfg).
		merge()
	if err != nil {
		return LoadResult{Reason: ReasonMalformed, Err: fmt.Errorf("%w: %w", ErrSyncConfigMalformed, err)}
	}
	// the cursor is owned by the document, env cannot move it
	cfg.LastSyncSequence = fileCfg.LastSyncSequence

	if !cfg.Enabled {
		return LoadResult{Config: cfg, Reason: ReasonDisabled}
	}

	if err = cfg.validate(); err != nil {
		return LoadResult{Reason: ReasonMalformed, Err: fmt.Errorf("%w: %w", ErrSyncConfigMalformed, err)}
	}

	return LoadResult{Config: cfg}
}

// SaveSyncConfig writes cfg to path atomically (temp file + rename).
func SaveSyncConfig(path string, cfg *SyncConfig) error {
	if cfg == nil {
		return errors.New("nil sync config")
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding sync config: %w", err)
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".notesync-*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp config: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing temp config: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("error syncing temp config: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp config: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error replacing sync config: %w", err)
	}

	return nil
}

// PersistSyncCursor stores the device id and the pull cursor in the document
// at path, leaving every other field as written in the file. Environment
// overrides are never written back.
func PersistSyncCursor(path, deviceID string, sequence int64) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading sync config: %w", err)
	}

	cfg := new(SyncConfig)
	if err = json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrSyncConfigMalformed, err)
	}
	if cfg.DeviceID == deviceID && cfg.LastSyncSequence == sequence {
		return nil
	}

	if deviceID != "" {
		cfg.DeviceID = deviceID
	}
	if sequence > cfg.LastSyncSequence {
		cfg.LastSyncSequence = sequence
	}
	return SaveSyncConfig(path, cfg)
}
