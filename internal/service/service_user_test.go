// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/mock"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, config.App{BcryptCost: 4}, logger.Nop()), repo
}

func TestUserService_Register_StoresHashNotPlaintext(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	input := models.User{UserID: 99, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "secret"}

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Zero(t, u.UserID, "client supplied id must be dropped")
			assert.NotEqual(t, "secret", u.Password)
			assert.True(t, utils.VerifyPassword("secret", u.Password))
			u.UserID = 1
			return u, nil
		},
	)

	user, err := svc.Register(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestUserService_Register_EmptyPasswordIsLeftForValidation(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	validationErr := &store.ValidationError{Messages: []string{`Please provide a value for "password"`}}

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.Password)
			return models.User{}, validationErr
		},
	)

	_, err := svc.Register(context.Background(), models.User{FirstName: "Joe"})
	assert.Same(t, validationErr, err)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, &store.UniquenessError{Messages: []string{"emailAddress must be unique"}})

	_, err := svc.Register(context.Background(), models.User{FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com", Password: "pw"})

	messages, ok := store.FieldMessages(err)
	require.True(t, ok)
	assert.Equal(t, []string{"emailAddress must be unique"}, messages)
}

func TestUserService_Register_PasswordTooLong(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.Register(context.Background(), models.User{
		FirstName: "Joe",
		Password:  strings.Repeat("a", 73),
	})

	var validationErr *store.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		`Please provide a value for "lastName"`,
		`Please provide a value for "emailAddress"`,
		passwordTooLongMessage,
	}, validationErr.Messages)
}
