// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

// courseRepository is the SQL implementation of [CourseRepository].
type courseRepository struct {
	db        *DB
	validator validators.Validator
	logger    *logger.Logger
}

// NewCourseRepository constructs a [CourseRepository] backed by db.
func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		db:        db,
		validator: validators.NewCourseValidator(),
		logger:    logger,
	}
}

// CreateCourse validates and inserts course. The returned course carries
// its new id; Owner is left empty.
func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, r.validator, course); err != nil {
		log.Debug().Err(err).Str("func", "*courseRepository.CreateCourse").Msg("course failed validation")
		return models.Course{}, err
	}

	query, args, err := buildCreateCourseQuery(r.db.builder, course)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.CreateCourse").Msg("error building query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.write(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&course.CourseID)
	})
	if err != nil {
		if constraintErr := r.db.errorClassificator.ConstraintViolation(err); constraintErr != nil {
			log.Debug().Err(constraintErr).Str("func", "*courseRepository.CreateCourse").Msg("constraint violated")
			return models.Course{}, constraintErr
		}

		log.Err(err).Str("func", "*courseRepository.CreateCourse").Int64("user_id", course.UserID).Msg("error inserting course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	course.Owner = nil
	return course, nil
}

// FindCourseByID returns the course with its owner's public fields or
// [ErrCourseNotFound].
func (r *courseRepository) FindCourseByID(ctx context.Context, courseID int64) (models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCourseQuery(r.db.builder, courseID)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Msg("error building query")
		return models.Course{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var course models.Course
	err = r.db.read(ctx, func(ctx context.Context) error {
		var scanErr error
		course, scanErr = scanCourse(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}

		log.Err(err).Str("func", "*courseRepository.FindCourseByID").Int64("course_id", courseID).Msg("error finding course")
		return models.Course{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return course, nil
}

// FindAllCourses returns every course ordered by id. An empty table yields
// an empty, non-nil slice.
func (r *courseRepository) FindAllCourses(ctx context.Context) ([]models.Course, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAllCoursesQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindAllCourses").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var courses []models.Course
	err = r.db.read(ctx, func(ctx context.Context) error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		courses = make([]models.Course, 0, 16)
		for rows.Next() {
			course, scanErr := scanCourse(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			courses = append(courses, course)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.FindAllCourses").Msg("error listing courses")
		return nil, err
	}

	return courses, nil
}

// UpdateCourse validates course and writes its editable fields.
// Returns [ErrCourseNotFound] if no row has course.CourseID.
func (r *courseRepository) UpdateCourse(ctx context.Context, course models.Course) error {
	log := logger.FromContext(ctx)

	if err := validate(ctx, r.validator, course); err != nil {
		log.Debug().Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("course failed validation")
		return err
	}

	query, args, err := buildUpdateCourseQuery(r.db.builder, course)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.UpdateCourse").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*courseRepository.UpdateCourse", course.CourseID, query, args)
}

// DeleteCourse removes the course. Returns [ErrCourseNotFound] if it does
// not exist.
func (r *courseRepository) DeleteCourse(ctx context.Context, courseID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCourseQuery(r.db.builder, courseID)
	if err != nil {
		log.Err(err).Str("func", "*courseRepository.DeleteCourse").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*courseRepository.DeleteCourse", courseID, query, args)
}

func (r *courseRepository) execAffectingOne(ctx context.Context, funcName string, courseID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.db.write(ctx, func(ctx context.Context) error {
		result, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		var rowsErr error
		affected, rowsErr = result.RowsAffected()
		return rowsErr
	})
	if err != nil {
		if constraintErr := r.db.errorClassificator.ConstraintViolation(err); constraintErr != nil {
			return constraintErr
		}

		log.Err(err).Str("func", funcName).Int64("course_id", courseID).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrCourseNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (models.Course, error) {
	var (
		course          models.Course
		owner           models.UserResponse
		estimatedTime   sql.NullString
		materialsNeeded sql.NullString
	)

	err := row.Scan(
		&course.CourseID,
		&course.Title,
		&course.Description,
		&estimatedTime,
		&materialsNeeded,
		&course.UserID,
		&course.CreatedAt,
		&course.UpdatedAt,
		&owner.UserID,
		&owner.FirstName,
		&owner.LastName,
		&owner.EmailAddress,
	)
	if err != nil {
		return models.Course{}, err
	}

	if estimatedTime.Valid {
		course.EstimatedTime = &estimatedTime.String
	}
	if materialsNeeded.Valid {
		course.MaterialsNeeded = &materialsNeeded.String
	}
	course.Owner = &owner

	return course, nil
}
