// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAdapter is a client of the course catalog REST API.
type CatalogAdapter interface {
	// SetCredentials stores Basic credentials for authenticated calls.
	SetCredentials(emailAddress, password string)
	// SetToken stores a bearer token. It takes precedence over Basic
	// credentials when both are set.
	SetToken(token string)

	Register(ctx context.Context, user models.User) error
	CurrentUser(ctx context.Context) (models.UserResponse, error)
	CreateToken(ctx context.Context) (models.TokenResponse, error)

	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)
	// CreateCourse returns the id of the new course taken from the
	// Location header.
	CreateCourse(ctx context.Context, course models.Course) (int64, error)
	UpdateCourse(ctx context.Context, courseID int64, update models.CourseUpdate) error
	DeleteCourse(ctx context.Context, courseID int64) error

	Version(ctx context.Context) (string, error)
}
