package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/models"
)

// StatusInfo is everything the status command shows.
type StatusInfo struct {
	Status    models.EngineStatus
	Progress  models.SyncProgress
	DeviceID  string
	ServerURL string
	Sequence  int64

	// Reason explains a disabled engine.
	Reason config.DisabledReason
}

func RenderStatus(info StatusInfo) string {
	var b strings.Builder

	state := stateBadge(info.Status.State)
	if info.Status.State == models.EngineStateDisabled && info.Reason != config.ReasonNone {
		state += fmt.Sprintf(" (sync document %s)", info.Reason)
	}
	b.WriteString(field("State", state))
	if info.Progress.InProgress {
		b.WriteString(field("Phase", string(info.Progress.Phase)))
	}
	b.WriteString(field("Device", valueOrDash(info.DeviceID)))
	b.WriteString(field("Server", valueOrDash(info.ServerURL)))
	b.WriteString(field("Cursor", strconv.FormatInt(info.Sequence, 10)))
	b.WriteString(field("Last sync", formatTime(info.Status.LastSyncAt)))
	b.WriteString(field("Pending changes", strconv.Itoa(info.Status.PendingChanges)))
	b.WriteString(field("Conflicts", strconv.Itoa(info.Status.ConflictCount)))
	b.WriteString(field("Failed changes", strconv.Itoa(info.Status.FailedChanges)))
	if info.Status.Error != "" {
		b.WriteString(field("Last error", errorStyle.Render(info.Status.Error)))
	}

	return renderPage("SYNC STATUS", b.String(), statusHint(info.Status))
}

func statusHint(status models.EngineStatus) string {
	switch {
	case status.ConflictCount > 0:
		return "notesync conflicts: review open conflicts"
	case status.FailedChanges > 0:
		return "notesync conflicts --failed: list rejected changes"
	case status.PendingChanges > 0 && status.State == models.EngineStateIdle:
		return "notesync sync: push pending changes"
	}
	return ""
}

// RenderStatusLine is the compact form printed by watch on every change.
func RenderStatusLine(status models.EngineStatus) string {
	line := fmt.Sprintf("%s  pending=%d conflicts=%d failed=%d",
		stateBadge(status.State), status.PendingChanges, status.ConflictCount, status.FailedChanges)
	if status.Error != "" {
		line += "  " + errorStyle.Render(status.Error)
	}
	return line
}
