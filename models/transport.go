// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChangeItem is a single outbound change inside a [PushRequest].
type ChangeItem struct {
	NoteID    string    `json:"note_id"`
	Operation Operation `json:"operation"`
	Version   int64     `json:"version"`
	Payload   *Note     `json:"payload,omitempty"`
}

// PushRequest is a batched upload of every queued change.
type PushRequest struct {
	DeviceID string       `json:"device_id"`
	Changes  []ChangeItem `json:"changes"`
}

// PushAccepted confirms that the server stored a change.
type PushAccepted struct {
	NoteID         string `json:"note_id"`
	ServerVersion  int64  `json:"server_version"`
	ServerSequence int64  `json:"server_sequence"`
}

// PushConflict reports that the server holds a diverging version. ServerNote
// is nil when the server copy is deleted.
type PushConflict struct {
	NoteID        string `json:"note_id"`
	ServerVersion int64  `json:"server_version"`
	ServerNote    *Note  `json:"server_note,omitempty"`
}

// PushError is a per-note failure. Retryable errors are retried on the next
// natural sync cycle.
type PushError struct {
	NoteID    string `json:"note_id"`
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}

// PushResponse is the server's per-note verdict on a [PushRequest].
type PushResponse struct {
	Accepted  []PushAccepted `json:"accepted"`
	Conflicts []PushConflict `json:"conflicts"`
	Errors    []PushError    `json:"errors"`
}

// PullRequest asks for every change recorded after SinceSequence.
type PullRequest struct {
	DeviceID      string `json:"device_id"`
	SinceSequence int64  `json:"since_sequence"`
}

// RemoteChange is one entry of the server change log.
type RemoteChange struct {
	NoteID         string    `json:"note_id"`
	Operation      Operation `json:"operation"`
	Version        int64     `json:"version"`
	ServerSequence int64     `json:"server_sequence"`
	Note           *Note     `json:"note,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// PullResponse is one page of the server change log.
type PullResponse struct {
	Changes        []RemoteChange `json:"changes"`
	HasMore        bool           `json:"has_more"`
	LatestSequence int64          `json:"latest_sequence"`
	ServerTime     time.Time      `json:"server_time"`
}
