package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSQLiteParams(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{
			name: "plain path",
			dsn:  "/tmp/sync.db",
			want: "/tmp/sync.db?_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate&_synchronous=NORMAL",
		},
		{
			name: "existing query",
			dsn:  "file:/tmp/sync.db?cache=shared",
			want: "file:/tmp/sync.db?cache=shared&_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate&_synchronous=NORMAL",
		},
		{
			name: "explicit option kept",
			dsn:  "/tmp/sync.db?_busy_timeout=100",
			want: "/tmp/sync.db?_busy_timeout=100&_journal_mode=WAL&_txlock=immediate&_synchronous=NORMAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withSQLiteParams(tt.dsn))
		})
	}
}

func TestDSNPath(t *testing.T) {
	assert.Equal(t, "/tmp/sync.db", dsnPath("/tmp/sync.db"))
	assert.Equal(t, "/tmp/sync.db", dsnPath("file:/tmp/sync.db?cache=shared"))
	assert.Equal(t, "sync.db", dsnPath("sync.db?_txlock=immediate"))
}
