// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and course
// ownership. EmailAddress is the login identifier.
// Password holds the bcrypt hash once the user is persisted and must never
// be written to a response; use [User.Public] for that.
type User struct {
	// UserID is the store-assigned unique identifier.
	UserID int64 `json:"id"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`

	// Password is the plaintext on the way in (registration payload) and
	// the bcrypt hash after persistence.
	Password string `json:"password"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the externally visible projection of the user.
func (u User) Public() UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// UserResponse is the public shape of a user. It has no password field
// so it is safe to serialize anywhere.
type UserResponse struct {
	UserID       int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
