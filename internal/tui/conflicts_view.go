package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

const previewWidth = 40

// RenderConflicts lists open conflicts, one box per note.
func RenderConflicts(conflicts []models.Conflict) string {
	if len(conflicts) == 0 {
		return renderPage("CONFLICTS", "No open conflicts", "")
	}

	boxes := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		var b strings.Builder
		b.WriteString(field("Note", c.NoteID))
		b.WriteString(field("Type", string(c.Type)))
		b.WriteString(field("Detected", formatTime(&c.DetectedAt)))
		b.WriteString(field("Local", sideSummary(c.LocalNote, c.LocalVersion)))
		b.WriteString(field("Remote", sideSummary(c.RemoteNote, c.RemoteVersion)))
		boxes = append(boxes, boxStyle.Render(strings.TrimRight(b.String(), "\n")))
	}

	return renderPage(
		fmt.Sprintf("CONFLICTS (%d)", len(conflicts)),
		strings.Join(boxes, "\n"),
		"notesync resolve <note-id> keep_local|keep_remote|keep_both",
	)
}

func sideSummary(note *models.Note, version int64) string {
	if note == nil {
		return fmt.Sprintf("deleted (v%d)", version)
	}
	return fmt.Sprintf("%q v%d", fitText(note.Title, previewWidth), version)
}

// RenderFailedChanges lists dead-lettered changes.
func RenderFailedChanges(changes []models.QueuedChange) string {
	if len(changes) == 0 {
		return renderPage("FAILED CHANGES", "No failed changes", "")
	}

	var b strings.Builder
	for _, c := range changes {
		fmt.Fprintf(&b, "%s  %s v%d after %d attempt(s): %s\n",
			c.NoteID, c.Operation, c.Version, c.Attempts, valueOrDash(c.LastError))
	}

	return renderPage(
		fmt.Sprintf("FAILED CHANGES (%d)", len(changes)),
		b.String(),
		"editing a note queues it again",
	)
}

// RenderResolved confirms a resolution.
func RenderResolved(resolved *models.ResolvedConflict, resolution models.Resolution) string {
	var b strings.Builder

	b.WriteString(field("Note", resolved.Conflict.NoteID))
	b.WriteString(field("Resolution", string(resolution)))
	if resolved.Primary != nil {
		b.WriteString(field("Kept", sideSummary(resolved.Primary, resolved.Primary.Version())))
	} else {
		b.WriteString(field("Kept", "deletion"))
	}
	if resolved.Copy != nil {
		b.WriteString(field("Copy", fmt.Sprintf("%s %q", resolved.Copy.ID, fitText(resolved.Copy.Title, previewWidth))))
	}

	return renderPage("CONFLICT RESOLVED", b.String(), "the change is pushed on the next sync")
}
