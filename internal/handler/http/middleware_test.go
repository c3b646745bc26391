// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{
		metrics: newMetrics(),
		logger:  &logger.Logger{Logger: zerolog.New(buf)},
	}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
	}{
		{name: "reuses caller id", requestID: "my-custom-trace-id"},
		{name: "generates uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.requestID != "" {
				req.Header.Set(traceIDHeader, tt.requestID)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, got, entry["trace_id"])
		})
	}
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name: "explicit status and body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("hello"))
			},
			wantStatus: http.StatusCreated,
			wantSize:   5,
		},
		{
			name:       "nothing written is logged as 200",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			req := httptest.NewRequest(http.MethodPost, "/courses?x=1", nil)
			req = req.WithContext(h.logger.WithContext(req.Context()))

			h.withLogging(tt.handler).ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "/courses?x=1", entry["uri"])
			assert.Equal(t, http.MethodPost, entry["method"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestResponseWriter(t *testing.T) {
	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.WriteHeader(http.StatusAccepted)
		w.WriteHeader(http.StatusTeapot)

		assert.Equal(t, http.StatusAccepted, w.status)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("write implies 200 and accumulates size", func(t *testing.T) {
		rec := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rec}

		w.Write([]byte("abc"))
		w.Write([]byte("de"))

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 5, w.size)
		assert.Equal(t, "abcde", rec.Body.String())
	})
}

func TestWithGZip(t *testing.T) {
	payload := strings.Repeat(`{"message":"compress me"}`, 50)

	t.Run("compresses when accepted", func(t *testing.T) {
		h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, payload, string(body))
	})

	t.Run("plain when not accepted", func(t *testing.T) {
		h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(payload))
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, payload, rec.Body.String())
	})

	t.Run("no content stays bodiless", func(t *testing.T) {
		h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("decompresses request body", func(t *testing.T) {
		var compressed bytes.Buffer
		zw := gzip.NewWriter(&compressed)
		zw.Write([]byte(`{"title":"x"}`))
		zw.Close()

		var got string
		h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			r.Body.Close()
			got = string(b)
		}))

		req := httptest.NewRequest(http.MethodPost, "/", &compressed)
		req.Header.Set("Content-Encoding", "gzip")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, `{"title":"x"}`, got)
	})

	t.Run("rejects broken gzip body", func(t *testing.T) {
		h := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("next must not be called")
		}))

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{msgInvalidGzip}, decodeErrors(t, rec))
	})
}

func TestWithRecovery(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	rec := httptest.NewRecorder()

	h.withRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, msgInternalError, decodeMessage(t, rec))
	assert.Contains(t, buf.String(), "boom")
}

func TestWithRecovery_AfterHeadersWritten(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(h.logger.WithContext(req.Context()))
	rec := httptest.NewRecorder()

	h.withRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"id":1},`))
		panic("late boom")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[{"id":1},`, rec.Body.String())
	assert.Contains(t, buf.String(), "late boom")
	assert.Contains(t, buf.String(), `"headers_sent":true`)
}

func TestWithRecovery_AbortHandlerIsRepanicked(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler := h.withRecovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	})
}

func TestCheckHTTPMethod(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Get("/items", ok)
	router.Route("/nested", func(r chi.Router) {
		r.Get("/", ok)
		r.Get("/{id}", ok)
		r.Group(func(r chi.Router) {
			r.Put("/{id}", ok)
		})
	})
	router.MethodNotAllowed(CheckHTTPMethod)

	tests := []struct {
		method, path string
		wantStatus   int
	}{
		{http.MethodGet, "/items", http.StatusOK},
		{http.MethodPost, "/items", http.StatusNotFound},
		{http.MethodGet, "/nested", http.StatusOK},
		{http.MethodPatch, "/nested", http.StatusNotFound},
		{http.MethodGet, "/nested/5", http.StatusOK},
		{http.MethodPut, "/nested/5", http.StatusOK},
		{http.MethodDelete, "/nested/5", http.StatusNotFound},
		{http.MethodPost, "/nested/5", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, msgRouteNotFound, decodeMessage(t, rec))
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts, services := newTestServices(t)
	ts.courses.EXPECT().GetCourse(gomock.Any(), int64(7)).Return(models.Course{CourseID: 7}, nil).Times(2)

	h := newTestHandler(services)
	router := h.Init()

	for range 2 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/7", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `course_catalog_http_requests_total{method="GET",route="/courses/{id}",status="200"} 2`)
	assert.Contains(t, body, "course_catalog_http_request_duration_seconds_bucket")
	assert.NotContains(t, body, `route="/courses/7"`)
}
