package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/engine"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/network"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/internal/vault"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

// Mode selects how the engine syncs.
type Mode int

const (
	// ModeOneShot runs cycles only on explicit request.
	ModeOneShot Mode = iota
	// ModeWatch follows the vault and polls the server until stopped.
	ModeWatch
)

type App struct {
	cfg     *config.ClientConfig
	syncDoc config.LoadResult
	mode    Mode

	vault  *vault.FileVault
	probe  *network.Probe
	engine *engine.Engine
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, mode Mode, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil client config")
	}

	syncDoc := config.LoadSyncConfig(cfg.Vault.SyncConfigPath)
	if !syncDoc.Enabled() {
		logger.Warn().Err(syncDoc.Err).
			Str("reason", string(syncDoc.Reason)).
			Str("path", cfg.Vault.SyncConfigPath).
			Msg("sync is disabled for this vault")
	}

	v, err := vault.NewFileVault(cfg.Vault.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}

	app := &App{
		cfg:     cfg,
		syncDoc: syncDoc,
		mode:    mode,
		vault:   v,
		logger:  logger,
	}

	deps := engine.Deps{
		OpenStore: engine.SQLiteStore(cfg.Storage, logger),
		Vault:     v,
		Monitor:   network.Offline(),
		Logger:    logger,
	}
	if syncDoc.Enabled() {
		transport, err := adapter.NewHTTPTransport(adapter.HTTPOptions{
			ServerURL: syncDoc.Config.ServerURL,
			Timeout:   cfg.Adapter.RequestTimeout,
			HashKey:   cfg.Adapter.HashKey,
			Token:     cfg.Adapter.Token,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("create transport: %w", err)
		}
		app.probe = network.NewProbe(transport, network.DefaultProbeInterval, logger)
		deps.Transport = transport
		deps.Monitor = app.probe
	}

	opts := engine.OptionsFromConfig(syncDoc, cfg.Engine)
	opts.Manual = mode == ModeOneShot
	app.engine = engine.New(deps, opts)

	return app, nil
}

func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Open initializes the engine. In one-shot mode the server is probed once so
// that the engine starts with the real connectivity state.
func (a *App) Open(ctx context.Context) error {
	if err := a.engine.Initialize(ctx); err != nil {
		return err
	}
	if a.probe != nil && a.mode == ModeOneShot {
		a.probe.Check(ctx)
	}
	return nil
}

// Close persists the device id and cursor into the sync document and shuts
// the engine down.
func (a *App) Close(ctx context.Context) error {
	persistErr := a.persistCursor(ctx)
	if err := a.engine.Shutdown(ctx); err != nil {
		return errors.Join(persistErr, err)
	}
	return persistErr
}

func (a *App) persistCursor(ctx context.Context) error {
	if a.syncDoc.Config == nil {
		return nil
	}

	seq, err := a.engine.SyncSequence(ctx)
	if err != nil {
		if errors.Is(err, engine.ErrNotInitialized) {
			return nil
		}
		return fmt.Errorf("read sync cursor: %w", err)
	}

	if err = config.PersistSyncCursor(a.cfg.Vault.SyncConfigPath, a.engine.GetDeviceID(), seq); err != nil {
		a.logger.Err(err).Str("func", "*App.persistCursor").Msg("failed to save sync document")
		return fmt.Errorf("save sync document: %w", err)
	}
	return nil
}

// Status gathers the status command's view.
func (a *App) Status(ctx context.Context) tui.StatusInfo {
	info := tui.StatusInfo{
		Status:   a.engine.GetStatus(ctx),
		Progress: a.engine.Progress(),
		DeviceID: a.engine.GetDeviceID(),
		Reason:   a.syncDoc.Reason,
	}
	if a.syncDoc.Config != nil {
		info.ServerURL = a.syncDoc.Config.ServerURL
	}
	if seq, err := a.engine.SyncSequence(ctx); err == nil {
		info.Sequence = seq
	}
	return info
}

// Watch follows the vault and the server until ctx is done. Open must have
// been called.
func (a *App) Watch(ctx context.Context, onStatus func(models.EngineStatus)) error {
	if onStatus != nil {
		unsubscribe := a.engine.OnStatusChange(ctx, onStatus)
		defer unsubscribe()
	}

	ws := workers.NewWorkers(a.logger).
		Add("watcher", vault.NewWatcher(a.vault, a.engine, vault.DefaultDebounce, a.logger))
	if a.probe != nil {
		ws.Add("probe", a.probe)
	}
	if a.syncDoc.Enabled() {
		ws.Add("cursor", workers.WorkerFunc(a.saveCursorPeriodically))
	}

	a.logger.Info().
		Str("vault", a.vault.Dir()).
		Bool("sync_enabled", a.syncDoc.Enabled()).
		Msg("watching vault")
	return ws.Run(ctx)
}

// saveCursorPeriodically keeps the sync document's cursor close to the
// store's one while watching.
func (a *App) saveCursorPeriodically(ctx context.Context) error {
	ticker := time.NewTicker(a.syncDoc.Config.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// a failed save is retried on the next tick
			_ = a.persistCursor(ctx)
		}
	}
}
