package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// NewSyncStore opens the SQLite database described by cfg, runs pending
// schema migrations and returns a ready [SyncStore].
//
// Returns an error if the database connection cannot be established or if
// migration fails; the connection is closed in the latter case.
func NewSyncStore(ctx context.Context, cfg config.Storage, logger *logger.Logger) (SyncStore, error) {
	logger.Debug().Str("func", "NewSyncStore").Msg("opening sync store...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewSQLiteSyncStore(db, logger), nil
}
