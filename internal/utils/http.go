// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxRequestBody bounds JSON request bodies accepted by the sync server.
const maxRequestBody = 32 << 20

// WriteJSON serializes data to JSON and writes it with the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads at most maxRequestBody bytes from r and decodes them into
// dst. Unknown fields are rejected.
func DecodeJSON(r io.Reader, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	return nil
}
