// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the notesync client runtime.
//
// It loads the vault's sync document, wires the file vault, HTTP transport,
// connectivity probe and sync engine together and owns their lifecycle for
// both one-shot commands and the long-running watch mode.
package client
