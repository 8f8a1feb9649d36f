package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

func TestPush(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(env *handlerEnv)
		wantStatus int
		check      func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "verdict is returned as JSON",
			body: `{"device_id":"dev-a","changes":[{"note_id":"n1","operation":"delete","version":2}]}`,
			setup: func(env *handlerEnv) {
				env.sync.EXPECT().Push(gomock.Any(), models.PushRequest{
					DeviceID: "dev-a",
					Changes:  []models.ChangeItem{{NoteID: "n1", Operation: models.OperationDelete, Version: 2}},
				}).Return(models.PushResponse{
					Accepted: []models.PushAccepted{{NoteID: "n1", ServerVersion: 2, ServerSequence: 7}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				var resp models.PushResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				require.Len(t, resp.Accepted, 1)
				assert.Equal(t, int64(7), resp.Accepted[0].ServerSequence)
			},
		},
		{
			name:       "invalid JSON",
			body:       `{"device_id":`,
			setup:      func(env *handlerEnv) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown fields are rejected",
			body:       `{"device_id":"dev-a","user_id":1}`,
			setup:      func(env *handlerEnv) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid request maps to 400",
			body: `{"device_id":"","changes":[]}`,
			setup: func(env *handlerEnv) {
				env.sync.EXPECT().Push(gomock.Any(), gomock.Any()).
					Return(models.PushResponse{}, fmt.Errorf("%w: empty device id", service.ErrInvalidSyncRequest))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unexpected error maps to 500",
			body: `{"device_id":"dev-a","changes":[]}`,
			setup: func(env *handlerEnv) {
				env.sync.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newHandlerEnv(t, config.ServerConfig{})
			tt.setup(env)

			req := httptest.NewRequest(http.MethodPost, "/api/sync/push", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			env.handler.push(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.check != nil {
				tt.check(t, rr)
			}
		})
	}
}

func TestPull(t *testing.T) {
	env := newHandlerEnv(t, config.ServerConfig{})
	env.sync.EXPECT().Pull(gomock.Any(), models.PullRequest{DeviceID: "dev-b", SinceSequence: 3}).
		Return(models.PullResponse{
			Changes:        []models.RemoteChange{{NoteID: "n1", Operation: models.OperationDelete, Version: 4, ServerSequence: 4}},
			HasMore:        true,
			LatestSequence: 4,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/sync/pull", strings.NewReader(`{"device_id":"dev-b","since_sequence":3}`))
	rr := httptest.NewRecorder()
	env.handler.pull(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.PullResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.HasMore)
	assert.Equal(t, int64(4), resp.LatestSequence)
	require.Len(t, resp.Changes, 1)
	assert.Equal(t, models.OperationDelete, resp.Changes[0].Operation)
}

func TestPull_Errors(t *testing.T) {
	env := newHandlerEnv(t, config.ServerConfig{})

	rr := httptest.NewRecorder()
	env.handler.pull(rr, httptest.NewRequest(http.MethodPost, "/api/sync/pull", strings.NewReader("not json")))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	env.sync.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PullResponse{}, fmt.Errorf("read: %w", store.ErrStoreClosed))
	rr = httptest.NewRecorder()
	env.handler.pull(rr, httptest.NewRequest(http.MethodPost, "/api/sync/pull", strings.NewReader(`{"device_id":"d"}`)))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler().health(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("wrap: %w", service.ErrInvalidSyncRequest), http.StatusBadRequest},
		{store.ErrInvalidChange, http.StatusBadRequest},
		{store.ErrStoreClosed, http.StatusServiceUnavailable},
		{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
