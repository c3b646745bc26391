// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt work factor used when no valid cost is
// configured.
const DefaultPasswordCost = 10

// ErrPasswordTooLong is returned by [HashPassword] when the plaintext exceeds
// bcrypt's 72-byte input limit.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// HashPassword computes a salted bcrypt hash of plaintext.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// [DefaultPasswordCost]. Two calls with the same plaintext produce different
// hashes because bcrypt generates a fresh salt every time.
//
// Example usage:
//
//	hash, err := utils.HashPassword("secret", 10)
func HashPassword(plaintext string, cost int) (string, error) {
	if len(plaintext) > 72 {
		return "", ErrPasswordTooLong
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches storedHash.
//
// Any comparison error, including a malformed or empty hash, is reported as
// a mismatch.
func VerifyPassword(plaintext, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}
