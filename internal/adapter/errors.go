package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrServerUnavailable covers network failures, timeouts and 503/504.
	ErrServerUnavailable = errors.New("sync server unavailable")

	ErrDecodingResponse = errors.New("failed to decode server response")
	ErrInvalidBaseURL   = errors.New("invalid server url")
)

// IsRetryable reports whether err is a transient transport failure that is
// worth repeating on the next sync cycle.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrServerUnavailable) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrInternalServerError)
}
