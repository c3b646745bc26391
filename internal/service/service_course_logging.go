// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/rs/zerolog"
)

// CourseServiceWrapper defines middleware composition for CourseService.
// Implementations wrap an existing CourseService to add behavior such as
// logging.
type CourseServiceWrapper interface {
	Wrap(CourseService) CourseService // returns a decorated CourseService applying additional behavior
}

// CourseLoggingService logs every mutating course operation with its
// outcome and duration.
type CourseLoggingService struct {
	inner CourseService
}

func NewCourseLoggingService() CourseServiceWrapper {
	return &CourseLoggingService{}
}

func (s *CourseLoggingService) Wrap(inner CourseService) CourseService {
	s.inner = inner
	return s
}

func (s *CourseLoggingService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.inner.ListCourses(ctx)
}

func (s *CourseLoggingService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	return s.inner.GetCourse(ctx, courseID)
}

func (s *CourseLoggingService) CreateCourse(ctx context.Context, owner models.User, course models.Course) (models.Course, error) {
	start := time.Now()
	created, err := s.inner.CreateCourse(ctx, owner, course)
	s.log(ctx, "create", owner.UserID, created.CourseID, start, err)
	return created, err
}

func (s *CourseLoggingService) UpdateCourse(ctx context.Context, actor models.User, courseID int64, update models.CourseUpdate) error {
	start := time.Now()
	err := s.inner.UpdateCourse(ctx, actor, courseID, update)
	s.log(ctx, "update", actor.UserID, courseID, start, err)
	return err
}

func (s *CourseLoggingService) DeleteCourse(ctx context.Context, actor models.User, courseID int64) error {
	start := time.Now()
	err := s.inner.DeleteCourse(ctx, actor, courseID)
	s.log(ctx, "delete", actor.UserID, courseID, start, err)
	return err
}

func (s *CourseLoggingService) log(ctx context.Context, op string, userID, courseID int64, start time.Time, err error) {
	var event *zerolog.Event
	if err != nil {
		event = logger.FromContext(ctx).Warn().Err(err)
	} else {
		event = logger.FromContext(ctx).Info()
	}

	event.
		Str("op", op).
		Int64("user_id", userID).
		Int64("course_id", courseID).
		Dur("duration", time.Since(start)).
		Msg("course mutation")
}
