// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

// MaxNoteContentSize bounds the content of a single pushed note.
const MaxNoteContentSize = 1 << 20

// syncService is the single-tenant reference implementation of
// [SyncService] on top of a [store.ChangeLog].
//
// A change is accepted when its version is newer than the server's, or when
// it carries the same content the server already holds. Anything else is
// reported back as a conflict together with the server copy.
type syncService struct {
	changeLog store.ChangeLog
	validator validators.Validator
	pageSize  int

	// push serializes head checks with appends
	push sync.Mutex
	now  func() time.Time

	logger *logger.Logger
}

// NewSyncService constructs a [SyncService]. A non-positive page size falls
// back to [config.DefaultPageSize].
func NewSyncService(changeLog store.ChangeLog, cfg config.ServerConfig, logger *logger.Logger) SyncService {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}

	return &syncService{
		changeLog: changeLog,
		validator: validators.NewSyncRequestValidator(MaxNoteContentSize),
		pageSize:  pageSize,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *syncService) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}

	response := models.PushResponse{
		Accepted:  []models.PushAccepted{},
		Conflicts: []models.PushConflict{},
		Errors:    []models.PushError{},
	}

	s.push.Lock()
	defer s.push.Unlock()

	for _, change := range req.Changes {
		if err := s.validator.Validate(ctx, change); err != nil {
			// never acceptable, whatever the version
			response.Errors = append(response.Errors, models.PushError{
				NoteID: change.NoteID,
				Error:  err.Error(),
			})
			continue
		}

		head, err := s.changeLog.Head(ctx, change.NoteID)
		if err != nil {
			log.Err(err).Str("func", "*syncService.Push").Str("note_id", change.NoteID).Msg("error reading note head")
			response.Errors = append(response.Errors, models.PushError{
				NoteID:    change.NoteID,
				Error:     "server storage error",
				Retryable: true,
			})
			continue
		}

		if head != nil && change.Version <= head.Version {
			if utils.ContentHash(change.Payload) == utils.ContentHash(head.Note) {
				// same content already stored; nothing new to record
				response.Accepted = append(response.Accepted, models.PushAccepted{
					NoteID:         change.NoteID,
					ServerVersion:  head.Version,
					ServerSequence: head.Sequence,
				})
				continue
			}

			log.Debug().Str("func", "*syncService.Push").
				Str("note_id", change.NoteID).
				Int64("version", change.Version).
				Int64("server_version", head.Version).
				Msg("push rejected with conflict")

			response.Conflicts = append(response.Conflicts, models.PushConflict{
				NoteID:        change.NoteID,
				ServerVersion: head.Version,
				ServerNote:    head.Note,
			})
			continue
		}

		stored, err := s.changeLog.Append(ctx, req.DeviceID, models.RemoteChange{
			NoteID:    change.NoteID,
			Operation: change.Operation,
			Version:   change.Version,
			Note:      withNoteID(change.Payload, change.NoteID),
			Timestamp: s.now().UTC(),
		})
		if err != nil {
			log.Err(err).Str("func", "*syncService.Push").Str("note_id", change.NoteID).Msg("error appending change")
			response.Errors = append(response.Errors, models.PushError{
				NoteID:    change.NoteID,
				Error:     "server storage error",
				Retryable: true,
			})
			continue
		}

		response.Accepted = append(response.Accepted, models.PushAccepted{
			NoteID:         change.NoteID,
			ServerVersion:  stored.Version,
			ServerSequence: stored.ServerSequence,
		})
	}

	log.Info().Str("func", "*syncService.Push").
		Str("device_id", req.DeviceID).
		Int("accepted", len(response.Accepted)).
		Int("conflicts", len(response.Conflicts)).
		Int("errors", len(response.Errors)).
		Msg("push processed")

	return response, nil
}

func (s *syncService) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.PullResponse{}, fmt.Errorf("%w: %w", ErrInvalidSyncRequest, err)
	}

	since := max(req.SinceSequence, 0)

	entries, err := s.changeLog.Entries(ctx, since, s.pageSize)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("error reading change log: %w", err)
	}
	head, err := s.changeLog.LatestSequence(ctx)
	if err != nil {
		return models.PullResponse{}, fmt.Errorf("error reading change log head: %w", err)
	}

	response := models.PullResponse{
		Changes:        []models.RemoteChange{},
		LatestSequence: max(head, since),
		ServerTime:     s.now().UTC(),
	}

	for _, entry := range entries {
		// a device never pulls its own changes back
		if entry.DeviceID == req.DeviceID {
			continue
		}
		response.Changes = append(response.Changes, entry.Change)
	}

	if n := len(entries); n > 0 && entries[n-1].Change.ServerSequence < head {
		response.HasMore = true
		response.LatestSequence = entries[n-1].Change.ServerSequence
	}

	logger.FromContext(ctx).Debug().Str("func", "*syncService.Pull").
		Str("device_id", req.DeviceID).
		Int64("since", since).
		Int("changes", len(response.Changes)).
		Bool("has_more", response.HasMore).
		Msg("pull processed")

	return response, nil
}
