// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// busyTimeoutMillis bounds how long a writer waits for another process
// holding the database lock.
const busyTimeoutMillis = 5000

// NewConnectSQLite opens the sync database at cfg.DSN. The connection runs
// in WAL mode so that status reads never wait for a writer, and every
// transaction starts with BEGIN IMMEDIATE so that writers from several
// processes are serialized by SQLite itself.
func NewConnectSQLite(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	path := dsnPath(cfg.DSN)
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", withSQLiteParams(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error pinging DB: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

// withSQLiteParams appends the go-sqlite3 connection options the store
// depends on, leaving any option already present in dsn untouched.
func withSQLiteParams(dsn string) string {
	params := []struct{ key, value string }{
		{"_journal_mode", "WAL"},
		{"_busy_timeout", fmt.Sprint(busyTimeoutMillis)},
		{"_txlock", "immediate"},
		{"_synchronous", "NORMAL"},
	}

	var b strings.Builder
	b.WriteString(dsn)
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, p := range params {
		if strings.Contains(dsn, p.key+"=") {
			continue
		}
		b.WriteString(sep)
		b.WriteString(p.key)
		b.WriteString("=")
		b.WriteString(p.value)
		sep = "&"
	}

	return b.String()
}

// dsnPath strips the file: scheme and query options from dsn.
func dsnPath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return path
}
