// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"

	"github.com/MKhiriev/go-course-catalog/models"
)

const (
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldEmailAddress = "emailAddress"
	FieldPassword     = "password"
)

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmailAddress, FieldPassword}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if isBlank(user.FirstName) {
				errs = append(errs, requiredMessage(FieldFirstName))
			}
		case FieldLastName:
			if isBlank(user.LastName) {
				errs = append(errs, requiredMessage(FieldLastName))
			}
		case FieldEmailAddress:
			switch {
			case isBlank(user.EmailAddress):
				errs = append(errs, requiredMessage(FieldEmailAddress))
			case !isEmailAddress(user.EmailAddress):
				errs = append(errs, `Please provide a valid email address for "emailAddress"`)
			}
		case FieldPassword:
			if user.Password == "" {
				errs = append(errs, requiredMessage(FieldPassword))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

// isEmailAddress accepts a bare addr-spec only: "Joe <joe@smith.com>" parses
// with net/mail but is not a login identifier.
func isEmailAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
