// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrEmptyAddress    = errors.New("empty address")
	ErrInvalidLocation = errors.New("invalid Location header")
)

// APIError is a non-2xx response. It unwraps to one of the sentinel errors
// above so callers can match with errors.Is.
type APIError struct {
	StatusCode int
	// Messages holds the "errors" list of a 400 or the single "message" of
	// any other failure.
	Messages []string

	kind error
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s (%d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, strings.Join(e.Messages, "; "))
}

func (e *APIError) Unwrap() error {
	return e.kind
}
