// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/models"
)

type courseService struct {
	courseRepository store.CourseRepository

	logger *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		logger:           logger,
	}
}

func (s *courseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courseRepository.FindAllCourses(ctx)
}

func (s *courseService) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	return s.courseRepository.FindCourseByID(ctx, courseID)
}

func (s *courseService) CreateCourse(ctx context.Context, owner models.User, course models.Course) (models.Course, error) {
	course.CourseID = 0
	course.UserID = owner.UserID
	course.Owner = nil

	return s.courseRepository.CreateCourse(ctx, course)
}

// UpdateCourse applies update to the course if actor owns it. The existence
// check comes first, so a missing course is store.ErrCourseNotFound for
// everyone. An empty update is accepted without a write.
func (s *courseService) UpdateCourse(ctx context.Context, actor models.User, courseID int64, update models.CourseUpdate) error {
	course, err := s.ownedCourse(ctx, actor, courseID)
	if err != nil {
		return err
	}

	if update.IsEmpty() {
		return nil
	}

	return s.courseRepository.UpdateCourse(ctx, update.Apply(course))
}

// DeleteCourse removes the course if actor owns it.
func (s *courseService) DeleteCourse(ctx context.Context, actor models.User, courseID int64) error {
	if _, err := s.ownedCourse(ctx, actor, courseID); err != nil {
		return err
	}

	return s.courseRepository.DeleteCourse(ctx, courseID)
}

func (s *courseService) ownedCourse(ctx context.Context, actor models.User, courseID int64) (models.Course, error) {
	course, err := s.courseRepository.FindCourseByID(ctx, courseID)
	if err != nil {
		return models.Course{}, err
	}

	if Authorize(actor.UserID, course.UserID) == Deny {
		logger.FromContext(ctx).Info().
			Int64("user_id", actor.UserID).
			Int64("course_id", courseID).
			Msg("ownership check denied")
		return models.Course{}, ErrForbidden
	}

	return course, nil
}
