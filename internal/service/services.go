// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	CourseService  CourseService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	courseService := NewCourseLoggingService().Wrap(NewCourseService(storages.CourseRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, cfg, logger),
		CourseService:  courseService,
		AppInfoService: appInfoService,
	}, nil
}
