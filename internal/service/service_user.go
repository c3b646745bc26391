// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/internal/validators"
	"github.com/MKhiriev/go-course-catalog/models"
)

const passwordTooLongMessage = `"password" must be at most 72 bytes long`

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	bcryptCost     int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register hashes a non-empty password and creates the account. An empty
// password is left as is so that the store reports it as a missing field
// together with every other validation message.
func (s *userService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	user.UserID = 0

	if user.Password != "" {
		hash, err := utils.HashPassword(user.Password, s.bcryptCost)
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return models.User{}, s.passwordTooLong(ctx, user)
		}
		if err != nil {
			log.Err(err).Str("func", "*userService.Register").Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hash
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		if _, ok := store.FieldMessages(err); ok {
			return models.User{}, err
		}

		log.Err(err).Str("func", "*userService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// passwordTooLong reports an over-long password alongside any other field
// problems of user.
func (s *userService) passwordTooLong(ctx context.Context, user models.User) error {
	messages := []string{}

	err := s.validator.Validate(ctx, user,
		validators.FieldFirstName, validators.FieldLastName, validators.FieldEmailAddress)

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		messages = append(messages, fieldErrs.Messages()...)
	}

	return &store.ValidationError{Messages: append(messages, passwordTooLongMessage)}
}
