// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// Decision is the outcome of an ownership check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Authorize allows a mutation only when the authenticated user owns the
// resource. Zero ids never match.
func Authorize(authenticatedUserID, ownerID int64) Decision {
	if authenticatedUserID <= 0 || authenticatedUserID != ownerID {
		return Deny
	}
	return Allow
}
