// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

// RenderBuildInfo shows the linker-injected build metadata.
func RenderBuildInfo(app string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(field("Application", app))
	b.WriteString(field("Version", valueOrNA(info.BuildVersion())))
	b.WriteString(field("Date", valueOrNA(info.BuildDate())))
	b.WriteString(field("Commit", valueOrNA(info.BuildCommit())))

	return renderPage("BUILD INFO", b.String(), "")
}
