// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/models"
)

const registerBody = `{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"joepassword"}`

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(ts *testServices)
		wantStatus int
		wantMsg    string
		wantErrors []string
	}{
		{
			name: "created",
			body: registerBody,
			setup: func(ts *testServices) {
				ts.users.EXPECT().Register(gomock.Any(), models.User{
					FirstName:    "Joe",
					LastName:     "Smith",
					EmailAddress: "joe@smith.com",
					Password:     "joepassword",
				}).Return(models.User{UserID: 1}, nil)
			},
			wantStatus: http.StatusCreated,
			wantMsg:    msgAccountCreated,
		},
		{
			name: "field errors",
			body: `{}`,
			setup: func(ts *testServices) {
				ts.users.EXPECT().Register(gomock.Any(), models.User{}).Return(models.User{}, &store.ValidationError{
					Messages: []string{`Please provide a value for "firstName"`, `Please provide a value for "lastName"`},
				})
			},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{`Please provide a value for "firstName"`, `Please provide a value for "lastName"`},
		},
		{
			name: "empty body is validated like an empty object",
			body: "",
			setup: func(ts *testServices) {
				ts.users.EXPECT().Register(gomock.Any(), models.User{}).Return(models.User{}, &store.ValidationError{
					Messages: []string{`Please provide a value for "firstName"`},
				})
			},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{`Please provide a value for "firstName"`},
		},
		{
			name: "duplicate email",
			body: registerBody,
			setup: func(ts *testServices) {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, &store.UniquenessError{
					Messages: []string{"emailAddress must be unique"},
				})
			},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"emailAddress must be unique"},
		},
		{
			name:       "malformed json",
			body:       `{"firstName":`,
			setup:      func(ts *testServices) {},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{msgInvalidJSON},
		},
		{
			name: "storage failure",
			body: registerBody,
			setup: func(ts *testServices) {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("disk full"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, services := newTestServices(t)
			tt.setup(ts)

			rec := serve(newTestHandler(services), http.MethodPost, "/users", tt.body, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, decodeErrors(t, rec))
				return
			}
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "/", rec.Header().Get("Location"))
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	ts, services := newTestServices(t)
	ts.auth.EXPECT().Authenticate(gomock.Any(), "joe@smith.com", "joepassword").Return(models.User{
		UserID:       1,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     "$2a$10$secret-hash",
	}, nil)

	rec := serve(newTestHandler(services), http.MethodGet, "/users", "", basicAuth("joe@smith.com", "joepassword"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCurrentUser_Unauthenticated(t *testing.T) {
	_, services := newTestServices(t)

	rec := serve(newTestHandler(services), http.MethodGet, "/users", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, msgAccessDenied, decodeMessage(t, rec))
}

func TestCreateToken(t *testing.T) {
	joe := models.User{UserID: 1, EmailAddress: "joe@smith.com"}
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("issued", func(t *testing.T) {
		ts, services := newTestServices(t)
		ts.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(joe, nil)
		ts.auth.EXPECT().CreateToken(gomock.Any(), joe).Return(models.Token{SignedString: "a.b.c", UserID: 1, ExpiresAt: expiresAt}, nil)

		rec := serve(newTestHandler(services), http.MethodPost, "/users/token", "", basicAuth("joe@smith.com", "joepassword"))

		require.Equal(t, http.StatusOK, rec.Code)
		var body models.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "a.b.c", body.Token)
		assert.True(t, expiresAt.Equal(body.ExpiresAt))
	})

	t.Run("disabled", func(t *testing.T) {
		ts, services := newTestServices(t)
		ts.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return(joe, nil)
		ts.auth.EXPECT().CreateToken(gomock.Any(), joe).Return(models.Token{}, service.ErrTokenAuthDisabled)

		rec := serve(newTestHandler(services), http.MethodPost, "/users/token", "", basicAuth("joe@smith.com", "joepassword"))

		assert.Equal(t, http.StatusNotImplemented, rec.Code)
		assert.Equal(t, msgTokenDisabled, decodeMessage(t, rec))
	})
}
