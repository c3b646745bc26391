// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/mock"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/models"
)

type testServices struct {
	auth    *mock.MockAuthService
	users   *mock.MockUserService
	courses *mock.MockCourseService
	appInfo *mock.MockAppInfoService
}

func newTestServices(t *testing.T) (*testServices, *service.Services) {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServices{
		auth:    mock.NewMockAuthService(ctrl),
		users:   mock.NewMockUserService(ctrl),
		courses: mock.NewMockCourseService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	return ts, &service.Services{
		AuthService:    ts.auth,
		UserService:    ts.users,
		CourseService:  ts.courses,
		AppInfoService: ts.appInfo,
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Server{}, logger.Nop())
}

// serve runs one request through the full router.
func serve(h *Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func basicAuth(email, password string) http.Header {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth(email, password)
	return req.Header
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func decodeErrors(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var body models.ErrorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Errors
}

func TestWelcome(t *testing.T) {
	_, services := newTestServices(t)

	rec := serve(newTestHandler(services), http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, msgWelcome, decodeMessage(t, rec))
}

func TestRouteNotFound(t *testing.T) {
	_, services := newTestServices(t)
	h := newTestHandler(services)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/nothing-here"},
		{name: "api prefix is not served", method: http.MethodGet, target: "/api/courses"},
		{name: "unsupported method on collection", method: http.MethodPatch, target: "/courses"},
		{name: "unsupported method on item", method: http.MethodPost, target: "/courses/1"},
		{name: "delete on users", method: http.MethodDelete, target: "/users"},
		{name: "post on root", method: http.MethodPost, target: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.method, tt.target, "", nil)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, msgRouteNotFound, decodeMessage(t, rec))
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	ts, services := newTestServices(t)
	ts.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(newTestHandler(services), http.MethodGet, "/version", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestTraceIDHeaderOnEveryResponse(t *testing.T) {
	_, services := newTestServices(t)

	rec := serve(newTestHandler(services), http.MethodGet, "/missing", "", http.Header{traceIDHeader: {"abc"}})

	assert.Equal(t, "abc", rec.Header().Get(traceIDHeader))
}

func TestRequestTimeoutMiddleware(t *testing.T) {
	tests := []struct {
		name string
		wrap func(err error) error
	}{
		{name: "bare context error", wrap: func(err error) error { return err }},
		{name: "wrapped by the store", wrap: func(err error) error {
			return fmt.Errorf("%w: %w", store.ErrExecutingQuery, err)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, services := newTestServices(t)
			h := NewHandler(services, config.Server{RequestTimeout: 20 * time.Millisecond}, logger.Nop())

			ts.courses.EXPECT().ListCourses(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Course, error) {
				<-ctx.Done()
				return nil, tt.wrap(ctx.Err())
			})

			rec := serve(h, http.MethodGet, "/courses", "", nil)

			assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
			assert.Equal(t, msgTimeout, decodeMessage(t, rec))
		})
	}
}
