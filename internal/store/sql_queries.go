// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	metaKeyDeviceID     = "device_id"
	metaKeySyncSequence = "sync_sequence"

	getMetaValue = `SELECT value FROM sync_meta WHERE key = ?;`

	insertMetaIfAbsent = `
		INSERT INTO sync_meta (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO NOTHING;`

	advanceSyncSequence = `
		INSERT INTO sync_meta (key, value) VALUES ('sync_sequence', ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
		WHERE CAST(excluded.value AS INTEGER) > CAST(sync_meta.value AS INTEGER);`

	getSyncState = `
		SELECT note_id, local_version, server_version, content_hash, last_synced_at, status
		FROM sync_state
		WHERE note_id = ?;`

	getAllSyncStates = `
		SELECT note_id, local_version, server_version, content_hash, last_synced_at, status
		FROM sync_state
		ORDER BY note_id;`

	upsertSyncState = `
		INSERT INTO sync_state (note_id, local_version, server_version, content_hash, last_synced_at, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (note_id) DO UPDATE SET
			local_version  = excluded.local_version,
			server_version = excluded.server_version,
			content_hash   = excluded.content_hash,
			last_synced_at = excluded.last_synced_at,
			status         = excluded.status;`

	markSyncStatePending = `
		INSERT INTO sync_state (note_id, local_version, server_version, content_hash, last_synced_at, status)
		VALUES (?, ?, NULL, ?, NULL, 'pending')
		ON CONFLICT (note_id) DO UPDATE SET
			local_version = excluded.local_version,
			content_hash  = excluded.content_hash,
			status        = 'pending';`

	markSyncStateAcknowledged = `
		UPDATE sync_state
		SET server_version = ?, last_synced_at = ?, status = 'pending'
		WHERE note_id = ?;`

	markSyncStateSynced = `
		UPDATE sync_state
		SET local_version = ?, server_version = ?, last_synced_at = ?, status = 'synced'
		WHERE note_id = ?;`

	deleteSyncState = `DELETE FROM sync_state WHERE note_id = ?;`

	upsertQueuedChange = `
		INSERT INTO sync_queue (note_id, operation, version, payload, attempts, last_error, queued_at, dead)
		VALUES (?, ?, ?, ?, 0, '', ?, 0)
		ON CONFLICT (note_id) DO UPDATE SET
			operation  = excluded.operation,
			version    = excluded.version,
			payload    = excluded.payload,
			attempts   = 0,
			last_error = '',
			queued_at  = excluded.queued_at,
			dead       = 0;`

	getQueuedVersion = `SELECT operation, version FROM sync_queue WHERE note_id = ?;`

	deleteQueuedChange = `DELETE FROM sync_queue WHERE note_id = ?;`

	deleteQueuedChangeAtVersion = `DELETE FROM sync_queue WHERE note_id = ? AND version = ?;`

	recordPushFailure = `
		UPDATE sync_queue
		SET attempts = attempts + 1, last_error = ?, dead = ?
		WHERE note_id = ? AND version = ?;`

	upsertConflict = `
		INSERT INTO sync_conflicts (note_id, conflict_type, local_note, remote_note, local_version, remote_version, detected_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (note_id) DO UPDATE SET
			conflict_type  = excluded.conflict_type,
			local_note     = excluded.local_note,
			remote_note    = excluded.remote_note,
			local_version  = excluded.local_version,
			remote_version = excluded.remote_version,
			detected_at    = excluded.detected_at;`

	deleteConflict = `DELETE FROM sync_conflicts WHERE note_id = ?;`
)

var (
	queueColumns    = []string{"note_id", "operation", "version", "payload", "attempts", "last_error", "queued_at", "dead"}
	conflictColumns = []string{"note_id", "conflict_type", "local_note", "remote_note", "local_version", "remote_version", "detected_at"}
)
