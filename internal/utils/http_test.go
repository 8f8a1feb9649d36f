// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"key": "value"}, http.StatusOK)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		DeviceID string `json:"device_id"`
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: `{"device_id":"dev-1"}`, want: "dev-1"},
		{name: "unknown field", input: `{"device_id":"dev-1","extra":1}`, wantErr: true},
		{name: "malformed", input: `{"device_id":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got body
			err := DecodeJSON(strings.NewReader(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.DeviceID)
		})
	}
}
