// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and the number of body bytes written, so that
// withLogging can report them once the handler returns.
//
// WriteHeader is forwarded to the underlying writer exactly once.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader (or an implicit one via Write) runs.
	status      int
	wroteHeader bool

	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends 200 OK when no status was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
