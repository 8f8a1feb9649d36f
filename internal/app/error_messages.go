// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// throughout the API.
package app

const (
	// MsgInvalidJSON is returned when a push or pull body cannot be decoded,
	// including bodies with unknown fields.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header is
	// missing or does not match the request body.
	MsgIntegrityCheckFailed = "Integrity check failed"

	// MsgInvalidGzip is returned for a gzip-encoded body that cannot be
	// decompressed.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgStatusOK is the health check status.
	MsgStatusOK = "ok"
)
