package engine

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/network"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/vault"
)

// StoreFactory opens the sync store. It is called by every Initialize that
// follows a Shutdown.
type StoreFactory func(ctx context.Context) (store.SyncStore, error)

// SQLiteStore returns a StoreFactory for the SQLite store described by cfg.
func SQLiteStore(cfg config.Storage, log *logger.Logger) StoreFactory {
	return func(ctx context.Context) (store.SyncStore, error) {
		return store.NewSyncStore(ctx, cfg, log)
	}
}

// Deps are the engine's collaborators. Monitor, IDs and Logger are optional.
type Deps struct {
	OpenStore StoreFactory
	Transport adapter.Transport
	Vault     vault.Callbacks
	Monitor   network.Monitor
	IDs       utils.IDGenerator
	Logger    *logger.Logger
}

// Options is the engine's view of the sync configuration document.
type Options struct {
	Enabled bool

	// DeviceID seeds the device id on first start. An id already stored
	// wins.
	DeviceID string

	// LastSyncSequence seeds the pull cursor. The cursor never moves back.
	LastSyncSequence int64

	SyncInterval time.Duration
	AutoResolve  bool
	MaxPullPages int

	// Manual keeps the engine off the network monitor: no polling job runs
	// and cycles happen only through TriggerSync.
	Manual bool
}

// OptionsFromConfig maps a loaded sync document to engine options. A
// document that failed to load yields disabled options.
func OptionsFromConfig(res config.LoadResult, engineCfg config.Engine) Options {
	opts := Options{
		Enabled:      res.Enabled(),
		AutoResolve:  engineCfg.AutoResolve,
		MaxPullPages: engineCfg.MaxPullPages,
	}
	if res.Config != nil {
		opts.DeviceID = res.Config.DeviceID
		opts.LastSyncSequence = res.Config.LastSyncSequence
		opts.SyncInterval = res.Config.Interval()
	}
	return opts
}
