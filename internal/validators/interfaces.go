// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of model rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldErrors: every failed rule contributes one message, so callers can
//     report all problems of a payload at once.
//
// The store layer runs these validators before writing a model, the same way
// an ORM validates a model before issuing an INSERT or UPDATE.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	// Rule failures are reported as [FieldErrors]; programming errors
	// (unsupported type, unknown field) as the sentinel errors of this package.
	Validate(context.Context, any, ...string) error
}
