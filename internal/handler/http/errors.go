// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-course-catalog/internal/app"
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header uses neither
	// the Basic nor the Bearer scheme, or when bearer tokens are disabled.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Short local names for the response messages.
const (
	msgWelcome        = app.MsgWelcome
	msgRouteNotFound  = app.MsgRouteNotFound
	msgAccessDenied   = app.MsgAccessDenied
	msgForbidden      = app.MsgForbidden
	msgCourseNotFound = app.MsgCourseNotFound
	msgInternalError  = app.MsgInternalServerError
	msgTokenDisabled  = app.MsgTokenAuthDisabled
	msgInvalidJSON    = app.MsgInvalidJSON
	msgInvalidGzip    = app.MsgInvalidGzip
	msgTimeout        = app.MsgRequestTimeout

	msgAccountCreated = app.MsgAccountCreated
	msgCourseCreated  = app.MsgCourseCreated
)
