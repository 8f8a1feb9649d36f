// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"slices"
	"time"
)

// Note is a whole-note snapshot exchanged between the vault and the sync
// core. The sync layer never interprets Content: it is hashed, stored and
// round-tripped as an opaque JSON blob.
type Note struct {
	// ID is the stable identifier of the note, shared by every device and
	// the server.
	ID string `json:"id"`

	// Title is the human-readable note title. It participates in the
	// content hash.
	Title string `json:"title"`

	// Content is the editor payload. Any valid JSON value is accepted.
	Content json.RawMessage `json:"content,omitempty"`

	// Tags is the list of user tags. Order is not significant for hashing.
	Tags []string `json:"tags,omitempty"`

	// CreatedAt is the moment the note was first created on any device.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the moment of the last local edit. It is used by the
	// conflict auto-resolver to pick the newer side.
	UpdatedAt time.Time `json:"updated_at"`

	// Sync carries the version bookkeeping embedded in every note. Nil means
	// the note was never prepared for sync (see the vault migrator).
	Sync *SyncMetadata `json:"sync,omitempty"`
}

// SyncMetadata is the per-note version bookkeeping embedded in [Note].
type SyncMetadata struct {
	// Version is a per-note, per-device monotonic counter. It starts at 1
	// and is incremented on every local mutation.
	Version int64 `json:"version"`

	// ContentHash is a deterministic digest of the normalized title,
	// content and tags.
	ContentHash string `json:"content_hash"`

	// ServerVersion is the version confirmed by the server. It is set only
	// by the sync coordinator and is nil until the first confirmed sync.
	ServerVersion *int64 `json:"server_version,omitempty"`

	// SyncedAt is the moment of the last confirmed sync, nil otherwise.
	SyncedAt *time.Time `json:"synced_at,omitempty"`

	// DeviceID identifies the device that produced this version.
	DeviceID string `json:"device_id"`
}

// Clone returns a deep copy of n. The sync core hands clones to the vault
// and to the store so that caller-owned snapshots are never mutated.
func (n *Note) Clone() *Note {
	if n == nil {
		return nil
	}

	c := *n
	if n.Content != nil {
		c.Content = slices.Clone(n.Content)
	}
	if n.Tags != nil {
		c.Tags = slices.Clone(n.Tags)
	}
	if n.Sync != nil {
		meta := *n.Sync
		if n.Sync.ServerVersion != nil {
			v := *n.Sync.ServerVersion
			meta.ServerVersion = &v
		}
		if n.Sync.SyncedAt != nil {
			t := *n.Sync.SyncedAt
			meta.SyncedAt = &t
		}
		c.Sync = &meta
	}

	return &c
}

// Version returns the note's local sync version or 0 when the note carries
// no sync metadata.
func (n *Note) Version() int64 {
	if n == nil || n.Sync == nil {
		return 0
	}
	return n.Sync.Version
}
