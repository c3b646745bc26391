// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
)

// columnFields maps storage column names to the JSON field names clients send.
var columnFields = map[string]string{
	"first_name":       "firstName",
	"last_name":        "lastName",
	"email_address":    "emailAddress",
	"password":         "password",
	"title":            "title",
	"description":      "description",
	"estimated_time":   "estimatedTime",
	"materials_needed": "materialsNeeded",
	"user_id":          "userId",
}

// constraintColumns maps named PostgreSQL constraints (see migrations) to
// the column they guard.
var constraintColumns = map[string]string{
	"users_email_address_key": "email_address",
	"courses_user_id_fkey":    "user_id",
}

func fieldName(column string) string {
	if field, ok := columnFields[column]; ok {
		return field
	}
	if column == "" {
		return "value"
	}
	return column
}

func constraintColumn(constraint string) string {
	if column, ok := constraintColumns[constraint]; ok {
		return column
	}
	return strings.TrimSuffix(strings.TrimSuffix(constraint, "_key"), "_fkey")
}

func uniqueMessage(column string) string {
	return fmt.Sprintf("%s must be unique", fieldName(column))
}

func requiredMessage(column string) string {
	return fmt.Sprintf("Please provide a value for %q", fieldName(column))
}

func referenceMessage(column string) string {
	return fmt.Sprintf("%q does not reference an existing record", fieldName(column))
}

func tooLongMessage(column string) string {
	return fmt.Sprintf("%q is too long", fieldName(column))
}
