// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

var errInvalidCourseID = errors.New("course id is not a positive integer")

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so that field rules, not the decoder, report missing fields.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeInvalidJSON(w http.ResponseWriter) {
	utils.WriteErrors(w, []string{msgInvalidJSON})
}

// courseIDFromRequest parses the {id} path parameter.
func courseIDFromRequest(r *http.Request) (int64, error) {
	courseID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || courseID < 1 {
		return 0, errInvalidCourseID
	}
	return courseID, nil
}

// currentUser returns the user stored by the auth middleware.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.CurrentUser(r.Context())
	if !ok {
		return models.User{}, service.ErrUnauthenticated
	}
	return user, nil
}
