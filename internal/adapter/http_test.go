// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// newTestTransport создаёт HTTPTransport, направленный на тестовый сервер
func newTestTransport(t *testing.T, serverURL string, opts ...func(*HTTPOptions)) *HTTPTransport {
	t.Helper()
	o := HTTPOptions{ServerURL: serverURL, Timeout: 2 * time.Second}
	for _, fn := range opts {
		fn(&o)
	}
	tr, err := NewHTTPTransport(o, logger.Nop())
	require.NoError(t, err)
	return tr
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPTransport_InvalidURL(t *testing.T) {
	_, err := NewHTTPTransport(HTTPOptions{ServerURL: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://sync.example.com/", want: "https://sync.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Push ────────────────────────────────────────────────────────────────────

func TestPush_Success(t *testing.T) {
	req := models.PushRequest{
		DeviceID: "dev-1",
		Changes: []models.ChangeItem{
			{NoteID: "n1", Operation: models.OperationCreate, Version: 1, Payload: &models.Note{ID: "n1", Title: "hello"}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sync/push", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got models.PushRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "dev-1", got.DeviceID)
		require.Len(t, got.Changes, 1)
		assert.Equal(t, "hello", got.Changes[0].Payload.Title)

		writeJSON(t, w, http.StatusOK, models.PushResponse{
			Accepted: []models.PushAccepted{{NoteID: "n1", ServerVersion: 1, ServerSequence: 10}},
		})
	}))
	defer srv.Close()

	resp, err := newTestTransport(t, srv.URL).Push(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Accepted, 1)
	assert.Equal(t, int64(10), resp.Accepted[0].ServerSequence)
}

func TestPush_SignsBodyAndSendsToken(t *testing.T) {
	const key = "secret"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		assert.True(t, utils.VerifyHash(body, r.Header.Get(HashHeader), key))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.PushResponse{})
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL, func(o *HTTPOptions) {
		o.HashKey = key
		o.Token = " tok "
	})
	_, err := tr.Push(context.Background(), models.PushRequest{DeviceID: "dev-1"})
	require.NoError(t, err)
}

func TestPush_NoHashHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(HashHeader))
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.PushResponse{})
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Push(context.Background(), models.PushRequest{})
	require.NoError(t, err)
}

func TestPush_StatusMapping(t *testing.T) {
	tests := []struct {
		status    int
		want      error
		retryable bool
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusRequestEntityTooLarge, want: ErrPayloadTooLarge},
		{status: http.StatusInternalServerError, want: ErrInternalServerError, retryable: true},
		{status: http.StatusBadGateway, want: ErrBadGateway, retryable: true},
		{status: http.StatusServiceUnavailable, want: ErrServerUnavailable, retryable: true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			_, err := newTestTransport(t, srv.URL).Push(context.Background(), models.PushRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}
}

func TestPush_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestTransport(t, url).Push(context.Background(), models.PushRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.True(t, IsRetryable(err))
}

func TestPush_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{accepted"))
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Push(context.Background(), models.PushRequest{})
	assert.ErrorIs(t, err, ErrDecodingResponse)
}

// ── Pull ────────────────────────────────────────────────────────────────────

func TestPull_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync/pull", r.URL.Path)

		var got models.PullRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, int64(5), got.SinceSequence)

		writeJSON(t, w, http.StatusOK, models.PullResponse{
			Changes: []models.RemoteChange{
				{NoteID: "n1", Operation: models.OperationDelete, Version: 3, ServerSequence: 6},
			},
			HasMore:        true,
			LatestSequence: 6,
		})
	}))
	defer srv.Close()

	resp, err := newTestTransport(t, srv.URL).Pull(context.Background(), models.PullRequest{DeviceID: "dev-1", SinceSequence: 5})
	require.NoError(t, err)
	assert.True(t, resp.HasMore)
	assert.Equal(t, int64(6), resp.LatestSequence)
	require.Len(t, resp.Changes, 1)
	assert.Nil(t, resp.Changes[0].Note)
}

func TestPull_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestTransport(t, srv.URL).Pull(ctx, models.PullRequest{})
	assert.Error(t, err)
}

// ── Health ──────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL)
	assert.NoError(t, tr.Health(context.Background()))

	status.Store(http.StatusServiceUnavailable)
	assert.ErrorIs(t, tr.Health(context.Background()), ErrServerUnavailable)
}
