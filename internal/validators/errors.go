package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDeviceID    = errors.New("empty device id")
	ErrEmptyNoteID      = errors.New("missing note id")
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidVersion   = errors.New("version must be positive")
	ErrMissingPayload   = errors.New("missing note payload")
	ErrPayloadMismatch  = errors.New("payload id does not match note id")
	ErrContentTooLarge  = errors.New("note content exceeds size limit")
)
