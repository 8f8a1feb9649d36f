// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-note-sync application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	closer io.Closer
}

// RotationConfig controls the size-based rotation of client log files.
type RotationConfig struct {
	// MaxSizeMB is the size in megabytes at which the file is rotated.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int
	// MaxAgeDays is the number of days rotated files are kept.
	MaxAgeDays int
}

// DefaultRotation is used by NewClientLogger when no rotation is configured.
var DefaultRotation = RotationConfig{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 28}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger for the given role label (e.g. "server",
// "sync-engine") that writes JSON to os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	configureGlobals()

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// NewClientLogger constructs a *Logger for long-running client processes.
// Entries are written to logPath through a size-rotated lumberjack writer so
// that a sync daemon left running for weeks does not fill the disk. When
// logPath is empty the log is written next to the executable, mirroring the
// CLI layout; when the directory cannot be created output falls back to
// os.Stderr.
func NewClientLogger(role, logPath string, rotation RotationConfig) *Logger {
	configureGlobals()

	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs", "notesync.log")
	}
	if rotation == (RotationConfig{}) {
		rotation = DefaultRotation
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer
	)
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		rotating := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
			MaxAge:     rotation.MaxAgeDays,
		}
		out, closer = rotating, rotating
	}

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger, closer: closer}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close releases the underlying log file, if any. It is safe to call on
// loggers that write to standard streams.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// context logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
