// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-course-catalog/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	kind, ok := statusErrors[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Messages:   responseMessages(resp.Body()),
		kind:       kind,
	}
}

// responseMessages extracts {"errors": [...]} or {"message": ...} from a
// failure body. A body in neither shape is returned verbatim.
func responseMessages(body []byte) []string {
	var shaped struct {
		models.ErrorsResponse
		models.MessageResponse
	}
	if err := json.Unmarshal(body, &shaped); err == nil {
		switch {
		case len(shaped.Errors) > 0:
			return shaped.Errors
		case shaped.Message != "":
			return []string{shaped.Message}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return []string{text}
	}
	return nil
}
