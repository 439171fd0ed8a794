// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the services.
//
// A [Validator] accepts any supported model and an optional list of field
// names restricting which checks run.
package validators

import "context"

// Validator validates input values, optionally scoped to named fields.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
