// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db        *DB
	validator validators.Validator
	logger    *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:        db,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
}

// CreateUser validates and persists a new user record and returns it with
// the store-assigned UserID.
//
// Error handling:
//   - failed field rules → [*ValidationError] listing every message.
//   - duplicate email address → [*UniquenessError].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, r.validator, user); err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.CreateUser").Msg("user failed validation")
		return models.User{}, err
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.write(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	})
	if err != nil {
		if constraintErr := r.db.errorClassificator.ConstraintViolation(err); constraintErr != nil {
			log.Debug().Err(constraintErr).Str("func", "*userRepository.CreateUser").Msg("constraint violated")
			return models.User{}, constraintErr
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose login email matches exactly.
// Returns [ErrUserNotFound] when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email_address": emailAddress})
}

// FindUserByID retrieves the user with the given id.
// Returns [ErrUserNotFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.read(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&foundUser.UserID,
			&foundUser.FirstName,
			&foundUser.LastName,
			&foundUser.EmailAddress,
			&foundUser.Password,
			&foundUser.CreatedAt,
			&foundUser.UpdatedAt,
		)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// validate runs v against obj and converts rule failures into a
// [*ValidationError].
func validate(ctx context.Context, v validators.Validator, obj any) error {
	err := v.Validate(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		return &ValidationError{Messages: fieldErrs.Messages()}
	}

	return fmt.Errorf("error validating %T: %w", obj, err)
}
