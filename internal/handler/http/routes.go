// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/go-course-catalog/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withRecovery, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/", h.welcome)
	router.Get("/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.metrics.registry, promhttp.HandlerOpts{}))

	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.register)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.currentUser)
			r.Post("/token", h.createToken)
		})
	})

	router.Route("/courses", func(r chi.Router) {
		r.Get("/", h.listCourses)
		r.Get("/{id}", h.getCourse)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createCourse)
			r.Put("/{id}", h.updateCourse)
			r.Delete("/{id}", h.deleteCourse)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, msgWelcome, http.StatusOK)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, msgRouteNotFound, http.StatusNotFound)
}
