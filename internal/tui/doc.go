// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the notesync command output: engine status, open
// conflicts, dead-lettered changes, sync and migration results.
//
// Renderers are pure functions returning strings styled with lipgloss. The
// active color profile is detected from the output, so piping the output to
// a file yields plain text.
package tui
