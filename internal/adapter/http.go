// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	mu           sync.RWMutex
	emailAddress string
	password     string
	token        string
}

// NewHTTPCatalogAdapter constructs a resty implementation of [CatalogAdapter].
// The base URL from cfg.HTTPAddress is normalised; a bare "host:port" gets
// an http:// scheme.
func NewHTTPCatalogAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("api response")
		return nil
	})

	return &httpCatalogAdapter{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) SetCredentials(emailAddress, password string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.emailAddress = emailAddress
	h.password = password
}

func (h *httpCatalogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// request starts a request bound to ctx.
func (h *httpCatalogAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// authorized starts a request that carries the stored credentials.
func (h *httpCatalogAdapter) authorized(ctx context.Context) *resty.Request {
	h.mu.RLock()
	defer h.mu.RUnlock()

	req := h.request(ctx)
	switch {
	case h.token != "":
		req.SetAuthToken(h.token)
	case h.emailAddress != "" || h.password != "":
		req.SetBasicAuth(h.emailAddress, h.password)
	}
	return req
}

func (h *httpCatalogAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.request(ctx).
		SetBody(user).
		Post("/users")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCatalogAdapter) CurrentUser(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.authorized(ctx).
		SetResult(&user).
		Get("/users")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpCatalogAdapter) CreateToken(ctx context.Context) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.authorized(ctx).
		SetResult(&token).
		Post("/users/token")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("create token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	return token, nil
}

func (h *httpCatalogAdapter) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course

	resp, err := h.request(ctx).
		SetResult(&courses).
		Get("/courses")
	if err != nil {
		return nil, fmt.Errorf("list courses request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return courses, nil
}

func (h *httpCatalogAdapter) GetCourse(ctx context.Context, courseID int64) (models.Course, error) {
	var course models.Course

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(courseID, 10)).
		SetResult(&course).
		Get("/courses/{id}")
	if err != nil {
		return models.Course{}, fmt.Errorf("get course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Course{}, err
	}

	return course, nil
}

func (h *httpCatalogAdapter) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	resp, err := h.authorized(ctx).
		SetBody(course).
		Post("/courses")
	if err != nil {
		return 0, fmt.Errorf("create course request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	location := resp.Header().Get("Location")
	courseID, err := strconv.ParseInt(path.Base(location), 10, 64)
	if err != nil || !strings.HasPrefix(location, "/courses/") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLocation, location)
	}

	return courseID, nil
}

func (h *httpCatalogAdapter) UpdateCourse(ctx context.Context, courseID int64, update models.CourseUpdate) error {
	resp, err := h.authorized(ctx).
		SetPathParam("id", strconv.FormatInt(courseID, 10)).
		SetBody(update).
		Put("/courses/{id}")
	if err != nil {
		return fmt.Errorf("update course request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCatalogAdapter) DeleteCourse(ctx context.Context, courseID int64) error {
	resp, err := h.authorized(ctx).
		SetPathParam("id", strconv.FormatInt(courseID, 10)).
		Delete("/courses/{id}")
	if err != nil {
		return fmt.Errorf("delete course request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCatalogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
