// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-course-catalog/models"
)

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldUserID      = "userId"
)

type CourseValidator struct{}

func NewCourseValidator() Validator {
	return &CourseValidator{}
}

func (v *CourseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Course:
		return v.validateCourse(ctx, value, fields...)
	case *models.Course:
		return v.validateCourse(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CourseValidator) validateCourse(_ context.Context, course models.Course, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldUserID}
	}

	var errs FieldErrors
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(course.Title) {
				errs = append(errs, requiredMessage(FieldTitle))
			}
		case FieldDescription:
			if isBlank(course.Description) {
				errs = append(errs, requiredMessage(FieldDescription))
			}
		case FieldUserID:
			if course.UserID <= 0 {
				errs = append(errs, requiredMessage(FieldUserID))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func requiredMessage(field string) string {
	return fmt.Sprintf("Please provide a value for %q", field)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
