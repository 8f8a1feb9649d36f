package store

import "errors"

// Sentinel errors returned by [SyncStore] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStoreClosed is returned by every method once Close was called.
	ErrStoreClosed = errors.New("sync store is closed")

	// ErrInvalidChange is returned when a queued change has no note id or
	// an unknown operation.
	ErrInvalidChange = errors.New("invalid queued change")

	// ErrEncodingNote is returned when a note snapshot cannot be
	// serialized for storage.
	ErrEncodingNote = errors.New("failed to encode note snapshot")

	// ErrDecodingNote is returned when a stored note snapshot is corrupt.
	ErrDecodingNote = errors.New("failed to decode note snapshot")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction (typically SQLITE_BUSY after the busy timeout).
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE
	// or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
