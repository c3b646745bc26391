// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

func TestAuthMiddleware(t *testing.T) {
	joe := models.User{UserID: 1, EmailAddress: "joe@smith.com", Password: "$2a$10$hash"}

	tests := []struct {
		name       string
		header     http.Header
		setup      func(ts *testServices)
		wantStatus int
		wantUser   bool
	}{
		{
			name:       "missing header",
			setup:      func(ts *testServices) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid basic credentials",
			header: basicAuth("joe@smith.com", "joepassword"),
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Authenticate(gomock.Any(), "joe@smith.com", "joepassword").Return(joe, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:   "wrong basic credentials",
			header: basicAuth("joe@smith.com", "nope"),
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Authenticate(gomock.Any(), "joe@smith.com", "nope").Return(models.User{}, service.ErrUnauthenticated)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "storage failure during basic auth",
			header: basicAuth("joe@smith.com", "joepassword"),
			setup: func(ts *testServices) {
				ts.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.User{}, errors.Join(store.ErrExecutingQuery, errors.New("conn reset")))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "valid bearer token",
			header: http.Header{"Authorization": {"Bearer abc.def.ghi"}},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().TokenAuthEnabled().Return(true)
				ts.auth.EXPECT().UserByToken(gomock.Any(), "abc.def.ghi").Return(joe, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:   "lowercase bearer scheme",
			header: http.Header{"Authorization": {"bearer abc.def.ghi"}},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().TokenAuthEnabled().Return(true)
				ts.auth.EXPECT().UserByToken(gomock.Any(), "abc.def.ghi").Return(joe, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:   "invalid bearer token",
			header: http.Header{"Authorization": {"Bearer expired"}},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().TokenAuthEnabled().Return(true)
				ts.auth.EXPECT().UserByToken(gomock.Any(), "expired").Return(models.User{}, service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "bearer token while token auth is disabled",
			header: http.Header{"Authorization": {"Bearer abc.def.ghi"}},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().TokenAuthEnabled().Return(false)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown scheme",
			header: http.Header{"Authorization": {"Digest whatever"}},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().TokenAuthEnabled().Return(true)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "empty bearer token",
			header: http.Header{"Authorization": {"Bearer "}},
			setup: func(ts *testServices) {
				ts.auth.EXPECT().TokenAuthEnabled().Return(true)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, services := newTestServices(t)
			tt.setup(ts)
			h := newTestHandler(services)

			var gotUser models.User
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUser, _ = utils.CurrentUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			for k, v := range tt.header {
				req.Header[k] = v
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, called)
			if tt.wantUser {
				assert.Equal(t, joe, gotUser)
				return
			}

			switch tt.wantStatus {
			case http.StatusUnauthorized:
				assert.Equal(t, msgAccessDenied, decodeMessage(t, rec))
			case http.StatusInternalServerError:
				assert.Equal(t, msgInternalError, decodeMessage(t, rec))
			}
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{header: "Bearer token", wantToken: "token"},
		{header: "BEARER token", wantToken: "token"},
		{header: "Bearer   token  ", wantToken: "token"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Basic abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer  ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
