// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser validates and inserts user. user.Password must already be
	// hashed. Returns the user with its assigned id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// CourseRepository persists courses. Reads return the course together with
// the public fields of its owner.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	FindCourseByID(ctx context.Context, courseID int64) (models.Course, error)
	FindAllCourses(ctx context.Context) ([]models.Course, error)
	// UpdateCourse writes the editable fields of course. The owner column is
	// never written.
	UpdateCourse(ctx context.Context, course models.Course) error
	DeleteCourse(ctx context.Context, courseID int64) error
}

// ErrorClassificator interprets driver errors for a specific database.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification

	// ConstraintViolation translates a constraint failure into a
	// [*UniquenessError] or [*ValidationError]. It returns nil when err is
	// not a constraint failure.
	ConstraintViolation(err error) error
}
