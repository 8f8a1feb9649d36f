package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/utils"
)

func TestStampNote_FirstVersion(t *testing.T) {
	note := plainNote("n1", "hello")

	stamped := StampNote(note, "dev-a")
	require.NotNil(t, stamped.Sync)
	assert.Equal(t, int64(1), stamped.Sync.Version)
	assert.Equal(t, utils.ContentHash(note), stamped.Sync.ContentHash)
	assert.Equal(t, "dev-a", stamped.Sync.DeviceID)
	assert.Nil(t, note.Sync, "входная заметка не должна меняться")
}

func TestStampNote_IncrementsByOne(t *testing.T) {
	note := versionedNote("n1", "hello", 7, "dev-b")
	sv := int64(7)
	syncedAt := testNow
	note.Sync.ServerVersion = &sv
	note.Sync.SyncedAt = &syncedAt
	note.Title = "edited"

	stamped := StampNote(note, "dev-a")
	assert.Equal(t, int64(8), stamped.Sync.Version)
	assert.Equal(t, int64(7), note.Sync.Version)
	assert.Equal(t, "dev-a", stamped.Sync.DeviceID)
	assert.Equal(t, utils.ContentHash(stamped), stamped.Sync.ContentHash)

	// serverVersion и syncedAt переносятся без изменений
	require.NotNil(t, stamped.Sync.ServerVersion)
	assert.Equal(t, int64(7), *stamped.Sync.ServerVersion)
	require.NotNil(t, stamped.Sync.SyncedAt)
	assert.True(t, stamped.Sync.SyncedAt.Equal(testNow))
	assert.NotSame(t, note.Sync.ServerVersion, stamped.Sync.ServerVersion)
}

func TestStampNote_Nil(t *testing.T) {
	assert.Nil(t, StampNote(nil, "dev-a"))
}
