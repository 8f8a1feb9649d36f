// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

const (
	msgServerUnavailable = "Network unavailable or sync server unreachable"
	msgUnauthorized      = "Sync server rejected the access token"
	msgConflictNotFound  = "No open conflict for this note"
	msgBadResolution     = "Unknown resolution, use keep_local, keep_remote or keep_both"
)

// HumanizeError turns an error returned by the sync core into a one-line
// message for the terminal.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrServerUnavailable):
		return msgServerUnavailable
	case errors.Is(err, adapter.ErrUnauthorized):
		return msgUnauthorized
	case errors.Is(err, service.ErrConflictNotFound):
		return msgConflictNotFound
	case errors.Is(err, service.ErrInvalidResolution):
		return msgBadResolution
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

// RenderError formats err for stderr.
func RenderError(err error) string {
	return errorStyle.Render("error: "+HumanizeError(err)) + "\n"
}
