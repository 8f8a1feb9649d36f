// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

func TestVerifyHash(t *testing.T) {
	const (
		key  = "shared-key"
		body = `{"device_id":"dev-a","changes":[]}`
	)

	tests := []struct {
		name           string
		hashKey        string
		signature      string
		wantStatus     int
		wantNextCalled bool
	}{
		{name: "no key configured — pass-through", hashKey: "", signature: "", wantStatus: http.StatusOK, wantNextCalled: true},
		{name: "valid signature", hashKey: key, signature: utils.HashString(body, key), wantStatus: http.StatusOK, wantNextCalled: true},
		{name: "missing signature", hashKey: key, signature: "", wantStatus: http.StatusBadRequest},
		{name: "signature made with another key", hashKey: key, signature: utils.HashString(body, "other"), wantStatus: http.StatusBadRequest},
		{name: "signature is not hex", hashKey: key, signature: "zz-not-hex", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{hashKey: tt.hashKey, logger: logger.Nop()}

			var gotBody string
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				gotBody = string(b)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sync/push", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(adapter.HashHeader, tt.signature)
			}
			rr := httptest.NewRecorder()
			h.verifyHash(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if tt.wantNextCalled {
				// тело должно быть восстановлено для следующего обработчика
				assert.Equal(t, body, gotBody)
			}
		})
	}
}
