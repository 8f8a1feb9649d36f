package models

// LogEntry is one accepted change in the server change log together with
// the device that pushed it.
type LogEntry struct {
	DeviceID string
	Change   RemoteChange
}

// NoteHead is the server's latest knowledge of a note. Note is nil when
// Deleted is set.
type NoteHead struct {
	NoteID   string
	Version  int64
	Sequence int64
	Deleted  bool
	Note     *Note
}
