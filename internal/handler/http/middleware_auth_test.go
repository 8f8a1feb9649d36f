package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name           string
		configured     string
		header         string
		wantStatus     int
		wantNextCalled bool
	}{
		{name: "no token configured — pass-through", configured: "", header: "", wantStatus: http.StatusOK, wantNextCalled: true},
		{name: "valid bearer token", configured: "secret", header: "Bearer secret", wantStatus: http.StatusOK, wantNextCalled: true},
		{name: "scheme is case-insensitive", configured: "secret", header: "bearer secret", wantStatus: http.StatusOK, wantNextCalled: true},
		{name: "missing header", configured: "secret", header: "", wantStatus: http.StatusUnauthorized},
		{name: "no token part", configured: "secret", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "empty token", configured: "secret", header: "Bearer  ", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", configured: "secret", header: "Basic secret", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", configured: "secret", header: "Bearer guess", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{token: tt.configured, logger: logger.Nop()}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/sync/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = getTokenFromAuthHeader("abc")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
