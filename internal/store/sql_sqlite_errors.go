// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify treats SQLITE_BUSY and SQLITE_LOCKED as retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// ConstraintViolation implements [ErrorClassificator]. SQLite names the
// failing column in the message as "table.column".
func (c *SQLiteErrorClassifier) ConstraintViolation(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.Code != sqlite3.ErrConstraint {
		return nil
	}

	column := sqliteConstraintColumn(sqliteErr.Error())

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return &UniquenessError{Messages: []string{uniqueMessage(column)}}
	case sqlite3.ErrConstraintNotNull:
		return &ValidationError{Messages: []string{requiredMessage(column)}}
	case sqlite3.ErrConstraintForeignKey:
		// SQLite does not report which key failed; courses.user_id is the only one.
		return &ValidationError{Messages: []string{referenceMessage("user_id")}}
	}

	return nil
}

// sqliteConstraintColumn extracts "column" from messages such as
// "UNIQUE constraint failed: users.email_address".
func sqliteConstraintColumn(message string) string {
	_, detail, found := strings.Cut(message, ": ")
	if !found {
		return ""
	}

	// composite constraints list several columns separated by ", "
	first, _, _ := strings.Cut(detail, ",")
	if _, column, ok := strings.Cut(first, "."); ok {
		return strings.TrimSpace(column)
	}
	return strings.TrimSpace(first)
}
