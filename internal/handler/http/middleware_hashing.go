package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/app"
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

// verifyHash checks the HMAC-SHA256 signature the client puts into the
// HashSHA256 header against the raw request body. It runs after gzip
// decoding, so the signature always covers the plain JSON. Requests pass
// through untouched when the server has no hash key.
func (h *Handler) verifyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		signature := r.Header.Get(adapter.HashHeader)
		if signature == "" {
			log.Error().Str("func", "*Handler.verifyHash").Msg("request is not signed")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifyHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !utils.VerifyHash(body, signature, h.hashKey) {
			log.Error().Str("func", "*Handler.verifyHash").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
