// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MessageResponse is the body of every non-validation response that only
// carries a human readable message (success notices, 401/403/404/500).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorsResponse is the body of a 400 response. Errors lists one message per
// failed field rule.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// TokenResponse is returned by the token endpoint.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
