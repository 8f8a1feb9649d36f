package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	FieldDeviceID  = "device_id"
	FieldNoteID    = "note_id"
	FieldOperation = "operation"
	FieldVersion   = "version"
	FieldPayload   = "payload"
)

type SyncRequestValidator struct {
	maxContentSize int
}

// NewSyncRequestValidator builds a Validator for push and pull requests.
// A non-positive maxContentSize disables the content size rule.
func NewSyncRequestValidator(maxContentSize int) Validator {
	return &SyncRequestValidator{maxContentSize: maxContentSize}
}

func (v *SyncRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PushRequest:
		return v.validateDevice(value.DeviceID, fields...)
	case *models.PushRequest:
		return v.validateDevice(value.DeviceID, fields...)

	case models.PullRequest:
		return v.validateDevice(value.DeviceID, fields...)
	case *models.PullRequest:
		return v.validateDevice(value.DeviceID, fields...)

	case models.ChangeItem:
		return v.validateChangeItem(ctx, value, fields...)
	case *models.ChangeItem:
		return v.validateChangeItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDevice checks the request envelope. Change items are validated
// one by one so that a bad item does not fail the whole push.
func (v *SyncRequestValidator) validateDevice(deviceID string, fields ...string) error {
	for _, f := range fields {
		if f != FieldDeviceID {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if deviceID == "" {
		return ErrEmptyDeviceID
	}
	return nil
}

func (v *SyncRequestValidator) validateChangeItem(_ context.Context, item models.ChangeItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID, FieldOperation, FieldVersion, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if item.NoteID == "" {
				return ErrEmptyNoteID
			}
		case FieldOperation:
			if !item.Operation.Valid() {
				return fmt.Errorf("%w %q", ErrUnknownOperation, item.Operation)
			}
		case FieldVersion:
			if item.Version < 1 {
				return ErrInvalidVersion
			}
		case FieldPayload:
			if err := v.validatePayload(item); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validatePayload: deletes may omit the payload, everything else must carry
// the note it names.
func (v *SyncRequestValidator) validatePayload(item models.ChangeItem) error {
	if item.Payload == nil {
		if item.Operation == models.OperationDelete {
			return nil
		}
		return ErrMissingPayload
	}

	if item.Payload.ID != "" && item.Payload.ID != item.NoteID {
		return ErrPayloadMismatch
	}
	if v.maxContentSize > 0 && len(item.Payload.Content) > v.maxContentSize {
		return ErrContentTooLarge
	}
	return nil
}
