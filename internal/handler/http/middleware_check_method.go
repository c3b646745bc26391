// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi calls it only when the path matches a route but no handler is
// registered for the request method, subrouters mounted with Route
// included. Instead of chi's 405 the caller gets the same 404
// "Route Not Found" body as for an unknown path, so the existence of the
// route is not revealed.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for the route")

	routeNotFound(w, r)
}
