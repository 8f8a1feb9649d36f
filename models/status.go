// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EngineState is the single user-visible sync state.
type EngineState string

// Engine states, listed from the highest to the lowest precedence.
const (
	EngineStateDisabled EngineState = "disabled"
	EngineStateOffline  EngineState = "offline"
	EngineStateConflict EngineState = "conflict"
	EngineStateError    EngineState = "error"
	EngineStateSyncing  EngineState = "syncing"
	EngineStateIdle     EngineState = "idle"
)

// EngineStatus is the snapshot returned by the engine and pushed to status
// subscribers.
type EngineStatus struct {
	State          EngineState `json:"state"`
	PendingChanges int         `json:"pending_changes"`
	ConflictCount  int         `json:"conflict_count"`
	FailedChanges  int         `json:"failed_changes"`
	LastSyncAt     *time.Time  `json:"last_sync_at,omitempty"`
	Error          string      `json:"error,omitempty"`
}

// SyncPhase is the coordinator's per-cycle state.
type SyncPhase string

const (
	SyncPhaseIdle    SyncPhase = "idle"
	SyncPhasePushing SyncPhase = "pushing"
	SyncPhasePulling SyncPhase = "pulling"
)

// SyncProgress exposes the coordinator phase.
type SyncProgress struct {
	Phase      SyncPhase `json:"phase"`
	InProgress bool      `json:"in_progress"`
}

// SyncResult summarises one push, pull or full cycle. Failures never escape
// as Go errors; they are reported in Errors.
type SyncResult struct {
	Pushed    int      `json:"pushed"`
	Pulled    int      `json:"pulled"`
	Conflicts int      `json:"conflicts"`
	Errors    []string `json:"errors,omitempty"`
}

// Merge adds other's counters and errors to r.
func (r *SyncResult) Merge(other SyncResult) {
	r.Pushed += other.Pushed
	r.Pulled += other.Pulled
	r.Conflicts += other.Conflicts
	r.Errors = append(r.Errors, other.Errors...)
}
