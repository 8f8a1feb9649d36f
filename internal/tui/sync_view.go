package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

// RenderSyncResult summarises one TriggerSync call. Per-note conflict
// messages are folded into the conflict counter.
func RenderSyncResult(result models.SyncResult) string {
	var b strings.Builder

	b.WriteString(field("Pushed", strconv.Itoa(result.Pushed)))
	b.WriteString(field("Pulled", strconv.Itoa(result.Pulled)))
	b.WriteString(field("Conflicts", strconv.Itoa(result.Conflicts)))
	for _, msg := range result.Errors {
		b.WriteString(errorStyle.Render("! "+msg) + "\n")
	}

	footer := ""
	if result.Conflicts > 0 {
		footer = "notesync conflicts: review open conflicts"
	}
	return renderPage("SYNC", b.String(), footer)
}

// RenderMigrationProgress is a single progress line, redrawn in place by
// the caller.
func RenderMigrationProgress(p models.MigrationProgress) string {
	line := fmt.Sprintf("%-9s %d/%d", p.Phase, p.Completed, p.Total)
	if p.CurrentNote != "" {
		line += "  " + fitText(p.CurrentNote, previewWidth)
	}
	return helpStyle.Render(line)
}

func RenderMigrationResult(result models.MigrationResult) string {
	var b strings.Builder

	b.WriteString(field("Notes", strconv.Itoa(result.Total)))
	b.WriteString(field("Migrated", strconv.Itoa(result.Migrated)))
	b.WriteString(field("Skipped", strconv.Itoa(result.Skipped)))
	b.WriteString(field("Queued", strconv.Itoa(result.Queued)))
	for _, e := range result.Errors {
		b.WriteString(errorStyle.Render(fmt.Sprintf("! %s: %s", e.NoteID, e.Error)) + "\n")
	}

	return renderPage("MIGRATION", b.String(), "")
}
