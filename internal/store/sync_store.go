// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

type sqliteSyncStore struct {
	*DB
	logger *logger.Logger
	closed atomic.Bool
}

// NewSQLiteSyncStore wraps an opened and migrated database.
func NewSQLiteSyncStore(db *DB, logger *logger.Logger) SyncStore {
	return &sqliteSyncStore{
		DB:     db,
		logger: logger,
	}
}

// ── device id & cursor ───────────────────────────────────────────────────────

func (s *sqliteSyncStore) GetDeviceID(ctx context.Context) (string, error) {
	if s.closed.Load() {
		return "", ErrStoreClosed
	}

	value, err := s.getMeta(ctx, s.DB.DB, metaKeyDeviceID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteSyncStore.GetDeviceID").Msg("failed to read device id")
		return "", err
	}
	return value, nil
}

func (s *sqliteSyncStore) SetDeviceID(ctx context.Context, id string) (string, error) {
	if s.closed.Load() {
		return "", ErrStoreClosed
	}

	var stored string
	err := s.withTx(ctx, "*sqliteSyncStore.SetDeviceID", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertMetaIfAbsent, metaKeyDeviceID, id); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		var err error
		stored, err = s.getMeta(ctx, tx, metaKeyDeviceID)
		return err
	})
	if err != nil {
		return "", err
	}

	return stored, nil
}

func (s *sqliteSyncStore) GetSyncSequence(ctx context.Context) (int64, error) {
	if s.closed.Load() {
		return 0, ErrStoreClosed
	}

	value, err := s.getMeta(ctx, s.DB.DB, metaKeySyncSequence)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteSyncStore.GetSyncSequence").Msg("failed to read sync sequence")
		return 0, err
	}
	if value == "" {
		return 0, nil
	}

	seq, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: sync sequence %q: %w", ErrScanningRow, value, err)
	}
	return seq, nil
}

func (s *sqliteSyncStore) SetSyncSequence(ctx context.Context, seq int64) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	if _, err := s.DB.ExecContext(ctx, advanceSyncSequence, strconv.FormatInt(seq, 10)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqliteSyncStore.SetSyncSequence").
			Int64("sequence", seq).
			Msg("failed to advance sync sequence")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ── sync state ───────────────────────────────────────────────────────────────

func (s *sqliteSyncStore) GetSyncState(ctx context.Context, noteID string) (*models.SyncState, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	state, err := scanSyncState(s.DB.QueryRowContext(ctx, getSyncState, noteID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqliteSyncStore.GetSyncState").
			Str("note_id", noteID).
			Msg("failed to read sync state")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return state, nil
}

func (s *sqliteSyncStore) SetSyncState(ctx context.Context, state models.SyncState) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	if state.Status == "" {
		state.Status = models.SyncStatusPending
	}

	_, err := s.DB.ExecContext(ctx, upsertSyncState,
		state.NoteID,
		state.LocalVersion,
		nullInt64(state.ServerVersion),
		state.ContentHash,
		nullTime(state.LastSyncedAt),
		string(state.Status),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqliteSyncStore.SetSyncState").
			Str("note_id", state.NoteID).
			Msg("failed to upsert sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteSyncStore) DeleteSyncState(ctx context.Context, noteID string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	if _, err := s.DB.ExecContext(ctx, deleteSyncState, noteID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqliteSyncStore.DeleteSyncState").
			Str("note_id", noteID).
			Msg("failed to delete sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteSyncStore) GetAllSyncStates(ctx context.Context) ([]models.SyncState, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}

	rows, err := s.DB.QueryContext(ctx, getAllSyncStates)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteSyncStore.GetAllSyncStates").Msg("failed to query sync states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.SyncState, 0)
	for rows.Next() {
		state, err := scanSyncState(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		states = append(states, *state)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return states, nil
}

// ── queue ────────────────────────────────────────────────────────────────────

func (s *sqliteSyncStore) QueueChange(ctx context.Context, change models.QueuedChange) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}
	if change.NoteID == "" || !change.Operation.Valid() {
		return fmt.Errorf("%w: note_id=%q operation=%q", ErrInvalidChange, change.NoteID, change.Operation)
	}

	payload, err := encodeNote(change.Payload)
	if err != nil {
		return err
	}
	if change.QueuedAt.IsZero() {
		change.QueuedAt = time.Now()
	}

	hash := ""
	if change.Payload != nil && change.Payload.Sync != nil {
		hash = change.Payload.Sync.ContentHash
	}

	return s.withTx(ctx, "*sqliteSyncStore.QueueChange", func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, upsertQueuedChange,
			change.NoteID,
			string(change.Operation),
			change.Version,
			payload,
			change.QueuedAt.UnixNano(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err = tx.ExecContext(ctx, markSyncStatePending, change.NoteID, change.Version, hash); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

func (s *sqliteSyncStore) GetQueuedChanges(ctx context.Context) ([]models.QueuedChange, error) {
	return s.listQueue(ctx, "*sqliteSyncStore.GetQueuedChanges", sq.Eq{"dead": false})
}

func (s *sqliteSyncStore) GetDeadLetters(ctx context.Context) ([]models.QueuedChange, error) {
	return s.listQueue(ctx, "*sqliteSyncStore.GetDeadLetters", sq.Eq{"dead": true})
}

func (s *sqliteSyncStore) GetQueuedChange(ctx context.Context, noteID string) (*models.QueuedChange, error) {
	changes, err := s.listQueue(ctx, "*sqliteSyncStore.GetQueuedChange", sq.Eq{"note_id": noteID})
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, nil
	}
	return &changes[0], nil
}

func (s *sqliteSyncStore) listQueue(ctx context.Context, fn string, where sq.Sqlizer) ([]models.QueuedChange, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(queueColumns...).
		From("sync_queue").
		Where(where).
		OrderBy("queued_at", "note_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build queue query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query queue")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := make([]models.QueuedChange, 0)
	for rows.Next() {
		var (
			change   models.QueuedChange
			op       string
			payload  sql.NullString
			queuedAt int64
		)
		if err = rows.Scan(&change.NoteID, &op, &change.Version, &payload,
			&change.Attempts, &change.LastError, &queuedAt, &change.Dead); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan queued change")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		change.Operation = models.Operation(op)
		change.QueuedAt = time.Unix(0, queuedAt)
		if change.Payload, err = decodeNote(payload); err != nil {
			log.Err(err).Str("func", fn).Str("note_id", change.NoteID).Msg("corrupt queued payload")
			return nil, err
		}
		changes = append(changes, change)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

func (s *sqliteSyncStore) RemoveQueuedChange(ctx context.Context, noteID string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	if _, err := s.DB.ExecContext(ctx, deleteQueuedChange, noteID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqliteSyncStore.RemoveQueuedChange").
			Str("note_id", noteID).
			Msg("failed to remove queued change")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteSyncStore) GetQueueSize(ctx context.Context) (int, error) {
	return s.count(ctx, "sync_queue", sq.Eq{"dead": false})
}

func (s *sqliteSyncStore) RecordPushFailure(ctx context.Context, noteID string, version int64, reason string, retryable bool) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	if _, err := s.DB.ExecContext(ctx, recordPushFailure, reason, !retryable, noteID, version); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqliteSyncStore.RecordPushFailure").
			Str("note_id", noteID).
			Int64("version", version).
			Msg("failed to record push failure")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteSyncStore) AcknowledgeChange(ctx context.Context, noteID string, pushedVersion, serverVersion int64, at time.Time) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	return s.withTx(ctx, "*sqliteSyncStore.AcknowledgeChange", func(tx *sql.Tx) error {
		var (
			op            string
			queuedVersion int64
		)
		err := tx.QueryRowContext(ctx, getQueuedVersion, noteID).Scan(&op, &queuedVersion)
		queued := true
		if errors.Is(err, sql.ErrNoRows) {
			queued = false
		} else if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		newerQueued := queued && queuedVersion != pushedVersion
		if queued && !newerQueued {
			if _, err = tx.ExecContext(ctx, deleteQueuedChangeAtVersion, noteID, pushedVersion); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if models.Operation(op) == models.OperationDelete {
				if _, err = tx.ExecContext(ctx, deleteSyncState, noteID); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
				return nil
			}
		}

		if newerQueued {
			_, err = tx.ExecContext(ctx, markSyncStateAcknowledged, serverVersion, at.UnixNano(), noteID)
		} else {
			_, err = tx.ExecContext(ctx, markSyncStateSynced, serverVersion, serverVersion, at.UnixNano(), noteID)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// ── conflicts ────────────────────────────────────────────────────────────────

func (s *sqliteSyncStore) StoreConflict(ctx context.Context, conflict models.Conflict) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	local, err := encodeNote(conflict.LocalNote)
	if err != nil {
		return err
	}
	remote, err := encodeNote(conflict.RemoteNote)
	if err != nil {
		return err
	}
	if conflict.DetectedAt.IsZero() {
		conflict.DetectedAt = time.Now()
	}

	_, err = s.DB.ExecContext(ctx, upsertConflict,
		conflict.NoteID,
		string(conflict.Type),
		local,
		remote,
		conflict.LocalVersion,
		conflict.RemoteVersion,
		conflict.DetectedAt.UnixNano(),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqliteSyncStore.StoreConflict").
			Str("note_id", conflict.NoteID).
			Msg("failed to store conflict")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqliteSyncStore) GetConflict(ctx context.Context, noteID string) (*models.Conflict, error) {
	conflicts, err := s.listConflicts(ctx, "*sqliteSyncStore.GetConflict", sq.Eq{"note_id": noteID})
	if err != nil {
		return nil, err
	}
	if len(conflicts) == 0 {
		return nil, nil
	}
	return &conflicts[0], nil
}

func (s *sqliteSyncStore) GetAllConflicts(ctx context.Context) ([]models.Conflict, error) {
	return s.listConflicts(ctx, "*sqliteSyncStore.GetAllConflicts", nil)
}

func (s *sqliteSyncStore) listConflicts(ctx context.Context, fn string, where sq.Sqlizer) ([]models.Conflict, error) {
	if s.closed.Load() {
		return nil, ErrStoreClosed
	}
	log := logger.FromContext(ctx)

	builder := sq.Select(conflictColumns...).From("sync_conflicts").OrderBy("detected_at", "note_id")
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build conflicts query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query conflicts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	conflicts := make([]models.Conflict, 0)
	for rows.Next() {
		var (
			c             models.Conflict
			conflictType  string
			local, remote sql.NullString
			detectedAt    int64
		)
		if err = rows.Scan(&c.NoteID, &conflictType, &local, &remote,
			&c.LocalVersion, &c.RemoteVersion, &detectedAt); err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan conflict")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		c.Type = models.ConflictType(conflictType)
		c.DetectedAt = time.Unix(0, detectedAt)
		if c.LocalNote, err = decodeNote(local); err != nil {
			return nil, err
		}
		if c.RemoteNote, err = decodeNote(remote); err != nil {
			return nil, err
		}
		conflicts = append(conflicts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return conflicts, nil
}

func (s *sqliteSyncStore) GetConflictCount(ctx context.Context) (int, error) {
	return s.count(ctx, "sync_conflicts", nil)
}

func (s *sqliteSyncStore) RemoveConflict(ctx context.Context, noteID string) error {
	if s.closed.Load() {
		return ErrStoreClosed
	}

	if _, err := s.DB.ExecContext(ctx, deleteConflict, noteID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*sqliteSyncStore.RemoveConflict").
			Str("note_id", noteID).
			Msg("failed to remove conflict")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Close closes the database. Subsequent calls are no-ops.
func (s *sqliteSyncStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.DB.Close()
}

// ── helpers ──────────────────────────────────────────────────────────────────

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *sqliteSyncStore) getMeta(ctx context.Context, q queryRower, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, getMetaValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return value, nil
}

func (s *sqliteSyncStore) count(ctx context.Context, table string, where sq.Sqlizer) (int, error) {
	if s.closed.Load() {
		return 0, ErrStoreClosed
	}

	builder := sq.Select("COUNT(*)").From(table)
	if where != nil {
		builder = builder.Where(where)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqliteSyncStore.count").Str("table", table).Msg("failed to count rows")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return n, nil
}

// withTx runs fn in a transaction and commits it, rolling back on any error.
func (s *sqliteSyncStore) withTx(ctx context.Context, fn string, body func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = body(tx); err != nil {
		log.Err(err).Str("func", fn).Msg("transaction aborted")
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncState(row rowScanner) (*models.SyncState, error) {
	var (
		state         models.SyncState
		serverVersion sql.NullInt64
		lastSyncedAt  sql.NullInt64
		status        string
	)
	if err := row.Scan(&state.NoteID, &state.LocalVersion, &serverVersion,
		&state.ContentHash, &lastSyncedAt, &status); err != nil {
		return nil, err
	}

	if serverVersion.Valid {
		v := serverVersion.Int64
		state.ServerVersion = &v
	}
	if lastSyncedAt.Valid {
		t := time.Unix(0, lastSyncedAt.Int64)
		state.LastSyncedAt = &t
	}
	state.Status = models.SyncStatus(status)

	return &state, nil
}

func encodeNote(note *models.Note) (sql.NullString, error) {
	if note == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(note)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("%w: %w", ErrEncodingNote, err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeNote(value sql.NullString) (*models.Note, error) {
	if !value.Valid {
		return nil, nil
	}
	note := new(models.Note)
	if err := json.Unmarshal([]byte(value.String), note); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingNote, err)
	}
	return note, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullTime(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixNano(), Valid: true}
}
