// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func gunzipBytes(t *testing.T, data []byte) string {
	t.Helper()
	gr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gr.Close()
	out, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name                 string
		acceptEncoding       string
		writeHeader          bool
		checkResponseGzipped bool
	}{
		{name: "compress response when client accepts gzip", acceptEncoding: "gzip", writeHeader: true, checkResponseGzipped: true},
		{name: "compress implicit 200 response", acceptEncoding: "gzip", writeHeader: false, checkResponseGzipped: true},
		{name: "accept-encoding with several values", acceptEncoding: "deflate, gzip, br", writeHeader: true, checkResponseGzipped: true},
		{name: "no compression when client doesn't accept gzip", acceptEncoding: "", writeHeader: true, checkResponseGzipped: false},
	}

	const payload = `{"status":"ok"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.writeHeader {
					w.WriteHeader(http.StatusOK)
				}
				w.Write([]byte(payload))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			if tt.checkResponseGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, gunzipBytes(t, rr.Body.Bytes()))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, payload, rr.Body.String())
			}
		})
	}
}

func TestGZip_DecodesRequestBody(t *testing.T) {
	const payload = `{"device_id":"dev-a"}`

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(b)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/sync/pull", bytes.NewReader(gzipBytes(t, []byte(payload))))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, payload, got)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

	req := httptest.NewRequest(http.MethodPost, "/api/sync/pull", bytes.NewReader([]byte("plain text")))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, nextCalled)
}
