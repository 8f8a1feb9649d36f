package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// auth is an HTTP middleware that enforces the shared bearer token the
// server was started with. It is a pass-through when no token is set.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token differs from the configured one ([ErrInvalidToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.token == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			log.Err(ErrInvalidToken).Str("func", "*Handler.auth").Msg("token rejected")
			http.Error(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form:
//
//	Authorization: Bearer <token>
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
