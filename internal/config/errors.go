// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrSyncConfigNotFound is reported (as the detail of a
	// [ReasonMissing] result) when no sync document exists at the path.
	ErrSyncConfigNotFound = errors.New("sync config document not found")

	// ErrSyncConfigMalformed wraps decoding and validation failures of the
	// sync document.
	ErrSyncConfigMalformed = errors.New("sync config document is malformed")

	// ErrInvalidStorageConfigs indicates an empty or in-memory store DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidVaultConfigs indicates a missing vault directory.
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")

	// ErrInvalidAdapterConfigs indicates a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
