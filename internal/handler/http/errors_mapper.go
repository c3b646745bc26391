// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
)

// errorStatuses is matched in order with errors.Is. Store errors wrap the
// driver error, so context.DeadlineExceeded must come before them.
var errorStatuses = []struct {
	target error
	status int
}{
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrTokenAuthDisabled, http.StatusNotImplemented},

	{store.ErrCourseNotFound, http.StatusNotFound},

	{store.ErrUserNotFound, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

var statusMessages = map[int]string{
	http.StatusUnauthorized:        msgAccessDenied,
	http.StatusForbidden:           msgForbidden,
	http.StatusNotFound:            msgCourseNotFound,
	http.StatusNotImplemented:      msgTokenDisabled,
	http.StatusInternalServerError: msgInternalError,
	http.StatusGatewayTimeout:      msgTimeout,
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as the response. Field errors become a 400 with
// the list of messages; everything else becomes {"message": ...} with the
// first matching status in errorStatuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if messages, ok := store.FieldMessages(err); ok {
		log.Debug().Strs("errors", messages).Msg("request rejected by field rules")
		utils.WriteErrors(w, messages)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, statusMessages[status], status)
}
