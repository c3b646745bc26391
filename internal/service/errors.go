// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnauthenticated means the request carried no usable credentials.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the authenticated user does not own the resource.
	ErrForbidden = errors.New("access to the resource is denied")

	ErrInvalidToken        = errors.New("token is expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenAuthDisabled   = errors.New("token authentication is disabled")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
