package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "no trace ID in request — UUID generated", requestTraceID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured *http.Request
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = r
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			newTestHandler().withTraceID(next).ServeHTTP(rr, req)

			require.NotNil(t, captured)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "generated trace id must be a UUID")
			}
		})
	}
}

// ---- withTraceID + withLogging ----

func TestWithLogging_WritesAccessLog(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "successful request is logged at info",
			status: http.StatusOK,
			body:   "OK",
			wantContains: []string{
				`"level":"info"`, `"method":"POST"`, `"uri":"/api/sync/push"`, `"status":200`, `"size":2`, `"trace_id":"trace-1"`,
			},
		},
		{
			name:         "server error is logged at error",
			status:       http.StatusInternalServerError,
			wantContains: []string{`"level":"error"`, `"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sync/push", nil)
			req.Header.Set(traceIDHeader, "trace-1")
			rr := httptest.NewRecorder()
			h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

			line := buf.String()
			for _, want := range tt.wantContains {
				assert.True(t, strings.Contains(line, want), "log %q should contain %s", line, want)
			}
		})
	}
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusAccepted)
	rw.WriteHeader(http.StatusTeapot) // повторный вызов игнорируется
	n, err := rw.Write([]byte("hello"))
	require.NoError(t, err)
	_, _ = rw.Write([]byte(" world"))

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusAccepted, rw.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 11, rw.size)
	assert.Equal(t, rec, rw.Unwrap())

	implicit := &responseWriter{ResponseWriter: httptest.NewRecorder()}
	_, _ = implicit.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, implicit.status)
}
