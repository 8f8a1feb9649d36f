package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/models"
)

func validItem() models.ChangeItem {
	return models.ChangeItem{
		NoteID:    "n1",
		Operation: models.OperationUpdate,
		Version:   2,
		Payload:   &models.Note{ID: "n1", Title: "t", Content: []byte(`"body"`)},
	}
}

func TestNewSyncRequestValidator(t *testing.T) {
	v := NewSyncRequestValidator(10)
	require.NotNil(t, v)

	_, ok := v.(*SyncRequestValidator)
	assert.True(t, ok)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncRequestValidator(0)
	ctx := context.Background()
	item := validItem()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{"push request", models.PushRequest{DeviceID: "dev"}, nil},
		{"push request ptr", &models.PushRequest{}, ErrEmptyDeviceID},
		{"pull request", models.PullRequest{DeviceID: "dev", SinceSequence: 3}, nil},
		{"pull request ptr", &models.PullRequest{}, ErrEmptyDeviceID},
		{"change item", item, nil},
		{"change item ptr", &item, nil},
		{"unsupported", "push", ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ChangeItem(t *testing.T) {
	v := NewSyncRequestValidator(16)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.ChangeItem)
		wantErr error
		wantMsg string
	}{
		{name: "valid", mutate: func(*models.ChangeItem) {}},
		{
			name:    "missing note id",
			mutate:  func(c *models.ChangeItem) { c.NoteID = "" },
			wantErr: ErrEmptyNoteID,
			wantMsg: "missing note id",
		},
		{
			name:    "unknown operation",
			mutate:  func(c *models.ChangeItem) { c.Operation = "move" },
			wantErr: ErrUnknownOperation,
			wantMsg: `unknown operation "move"`,
		},
		{
			name:    "zero version",
			mutate:  func(c *models.ChangeItem) { c.Version = 0 },
			wantErr: ErrInvalidVersion,
		},
		{
			name:    "update without payload",
			mutate:  func(c *models.ChangeItem) { c.Payload = nil },
			wantErr: ErrMissingPayload,
		},
		{
			name: "delete without payload",
			mutate: func(c *models.ChangeItem) {
				c.Operation = models.OperationDelete
				c.Payload = nil
			},
		},
		{
			name:    "payload for another note",
			mutate:  func(c *models.ChangeItem) { c.Payload.ID = "n2" },
			wantErr: ErrPayloadMismatch,
		},
		{
			name:    "content too large",
			mutate:  func(c *models.ChangeItem) { c.Payload.Content = []byte(`"` + strings.Repeat("x", 16) + `"`) },
			wantErr: ErrContentTooLarge,
			wantMsg: "note content exceeds size limit",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)

			err := v.Validate(ctx, item)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewSyncRequestValidator(0)
	ctx := context.Background()

	item := validItem()
	item.Version = 0
	item.Payload = nil

	// проверяется только запрошенное поле
	assert.NoError(t, v.Validate(ctx, item, FieldNoteID, FieldOperation))
	assert.ErrorIs(t, v.Validate(ctx, item, FieldPayload), ErrMissingPayload)
	assert.ErrorIs(t, v.Validate(ctx, item), ErrInvalidVersion)

	assert.ErrorIs(t, v.Validate(ctx, item, "title"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.PullRequest{DeviceID: "dev"}, FieldNoteID), ErrUnknownField)
	assert.NoError(t, v.Validate(ctx, models.PullRequest{DeviceID: "dev"}, FieldDeviceID))
}

func TestValidate_NoSizeLimit(t *testing.T) {
	item := validItem()
	item.Payload.Content = []byte(`"` + strings.Repeat("x", 1<<16) + `"`)

	assert.NoError(t, NewSyncRequestValidator(0).Validate(context.Background(), item))
}
