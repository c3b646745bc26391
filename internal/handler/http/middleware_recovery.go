// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
)

// withRecovery turns a panic in a handler into a logged 500 with the usual
// JSON body. http.ErrAbortHandler is re-raised so the server can abort the
// connection. When the handler already sent headers the partial response is
// left as is and only the panic is logged.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Bool("headers_sent", rw.wroteHeader).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			utils.WriteMessage(rw, msgInternalError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
