// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"
)

// ValidationError is returned when a model breaks one or more field rules
// before or while it is written. Messages holds one entry per failed rule.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// UniquenessError is returned when a write collides with a unique
// constraint (for example a second account with the same email address).
type UniquenessError struct {
	Messages []string
}

func (e *UniquenessError) Error() string {
	return "uniqueness violated: " + strings.Join(e.Messages, "; ")
}

// FieldMessages extracts the per-field messages carried by a
// [ValidationError] or [UniquenessError] anywhere in err's chain.
// ok is false for every other error.
func FieldMessages(err error) (messages []string, ok bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Messages, true
	}

	var uniquenessErr *UniquenessError
	if errors.As(err, &uniquenessErr) {
		return uniquenessErr.Messages, true
	}

	return nil, false
}

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("no user was found")

	// ErrCourseNotFound is returned when no course has the requested id,
	// including updates and deletes that affected zero rows.
	ErrCourseNotFound = errors.New("course was not found")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// database driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
