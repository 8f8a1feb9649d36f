// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"

	"golang.org/x/crypto/blake2b"

	"github.com/MKhiriev/go-note-sync/models"
)

// canonicalNote is the normalized projection of a note that is fed into the
// content hash. Field order is fixed by the struct definition.
type canonicalNote struct {
	Title   string          `json:"t"`
	Content json.RawMessage `json:"c"`
	Tags    []string        `json:"g"`
}

// ContentHash computes the deterministic digest used to tell "the same edit
// reached both sides" apart from real divergence.
//
// Normalization:
//   - Content is compacted (insignificant JSON whitespace is dropped); a
//     payload that is not valid JSON is hashed byte for byte;
//   - Tags are sorted and de-duplicated;
//   - sync metadata, ids and timestamps are ignored.
//
// A nil note (a deletion) hashes to the empty string.
func ContentHash(note *models.Note) string {
	if note == nil {
		return ""
	}

	content := note.Content
	if len(content) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, content); err == nil {
			content = buf.Bytes()
		}
	}
	if len(content) == 0 {
		content = json.RawMessage("null")
	}

	tags := slices.Clone(note.Tags)
	slices.Sort(tags)
	tags = slices.Compact(tags)
	if tags == nil {
		tags = []string{}
	}

	payload, err := json.Marshal(canonicalNote{Title: note.Title, Content: content, Tags: tags})
	if err != nil {
		// content is not valid JSON and cannot be embedded; hash raw parts
		payload = append([]byte(note.Title+"\x00"), note.Content...)
		for _, tag := range tags {
			payload = append(payload, 0)
			payload = append(payload, tag...)
		}
	}

	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// It signs request bodies exchanged with the sync server when a shared hash
// key is configured.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), hashKey))
}

// VerifyHash reports whether signature is the valid hex HMAC-SHA256 of data.
func VerifyHash(data []byte, signature, hashKey string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, hashBytes(data, hashKey))
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
