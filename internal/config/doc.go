// Package config provides configuration loading, merging, and validation
// facilities for the sync client.
//
// Two kinds of configuration live here:
//
//   - [SyncConfig], the small persisted document that says whether sync is
//     enabled for a vault and where the server is. Loading it never fails:
//     [LoadSyncConfig] classifies a missing, disabled or malformed document
//     into a [DisabledReason] so that the engine simply stays disabled.
//   - [ClientConfig], the runtime settings of the notesync binary (store
//     location, vault directory, log file, transport timeout).
//
// Both are assembled from several sources and merged with mergo: values
// from environment variables take precedence over command-line flags,
// which take precedence over the JSON document.
package config
