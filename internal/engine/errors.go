package engine

import "errors"

var (
	ErrNotInitialized = errors.New("sync engine not initialized")
	ErrSyncDisabled   = errors.New("sync disabled")
)

// Literal TriggerSync messages.
const (
	MsgSyncDisabled   = "Sync disabled"
	MsgNotInitialized = "Sync engine not initialized"
)
