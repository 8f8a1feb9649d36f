// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MigrationPhase is the current step of a vault migration.
type MigrationPhase string

const (
	MigrationPhaseScanning  MigrationPhase = "scanning"
	MigrationPhaseMigrating MigrationPhase = "migrating"
	MigrationPhaseQueueing  MigrationPhase = "queueing"
	MigrationPhaseComplete  MigrationPhase = "complete"
)

// MigrationProgress is reported to the migrator's progress callback.
type MigrationProgress struct {
	Total       int            `json:"total"`
	Completed   int            `json:"completed"`
	CurrentNote string         `json:"current_note,omitempty"`
	Phase       MigrationPhase `json:"phase"`
}

// MigrationError is a per-note failure collected during migration.
type MigrationError struct {
	NoteID string `json:"note_id"`
	Error  string `json:"error"`
}

// MigrationResult summarises a finished migration batch.
type MigrationResult struct {
	Total    int              `json:"total"`
	Migrated int              `json:"migrated"`
	Skipped  int              `json:"skipped"`
	Queued   int              `json:"queued"`
	Errors   []MigrationError `json:"errors,omitempty"`
}
