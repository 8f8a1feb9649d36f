// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Duration is a wrapper around time.Duration used in JSON documents.
//
// It unmarshals either from a Go duration string ("30s", "5m") or from a
// plain number, which is read as milliseconds to stay compatible with
// documents that store syncIntervalMs.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*d = 0
		return nil
	case float64:
		*d = Duration(time.Duration(value * float64(time.Millisecond)))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText lets caarlos0/env decode NOTESYNC_SYNC_INTERVAL with the
// same rules as the JSON form.
func (d *Duration) UnmarshalText(b []byte) error {
	if ms, err := strconv.ParseInt(string(b), 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
