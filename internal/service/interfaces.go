// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService resolves request credentials to users.
type AuthService interface {
	// Authenticate checks Basic credentials. Any mismatch, including an
	// unknown email, is reported as ErrUnauthenticated.
	Authenticate(ctx context.Context, emailAddress, password string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// UserByToken parses a bearer token and loads the user it was issued to.
	UserByToken(ctx context.Context, tokenString string) (models.User, error)

	// TokenAuthEnabled reports whether bearer tokens can be issued and accepted.
	TokenAuthEnabled() bool
}

// UserService manages user accounts.
type UserService interface {
	// Register hashes the password and persists the user.
	Register(ctx context.Context, user models.User) (models.User, error)
}

// CourseService orchestrates course reads and owner-only mutations.
type CourseService interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse stores course owned by owner; any UserID on course is replaced.
	CreateCourse(ctx context.Context, owner models.User, course models.Course) (models.Course, error)
	UpdateCourse(ctx context.Context, actor models.User, courseID int64, update models.CourseUpdate) error
	DeleteCourse(ctx context.Context, actor models.User, courseID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
