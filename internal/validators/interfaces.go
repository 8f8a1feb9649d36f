// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming sync requests before they reach the
// change log.
//
// A Validator accepts any supported request type and, optionally, the
// names of the fields to check. Without field names every rule of the type
// is applied in a fixed order and the first violation is returned.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
