// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/utils"
	"github.com/MKhiriev/go-course-catalog/models"
)

func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromRequest(r)
	if err != nil {
		utils.WriteMessage(w, msgCourseNotFound, http.StatusNotFound)
		return
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), courseID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

// createCourse stores a course owned by the authenticated user and points
// Location at it.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var course models.Course
	if err = decodeJSON(r, &course); err != nil {
		log.Debug().Err(err).Msg("invalid course body")
		writeInvalidJSON(w)
		return
	}

	created, err := h.services.CourseService.CreateCourse(r.Context(), user, course)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/courses/%d", created.CourseID))
	utils.WriteMessage(w, msgCourseCreated, http.StatusCreated)
}

func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		utils.WriteMessage(w, msgCourseNotFound, http.StatusNotFound)
		return
	}

	var update models.CourseUpdate
	if err = decodeJSON(r, &update); err != nil {
		log.Debug().Err(err).Msg("invalid course update body")
		writeInvalidJSON(w)
		return
	}

	if err = h.services.CourseService.UpdateCourse(r.Context(), user, courseID, update); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		utils.WriteMessage(w, msgCourseNotFound, http.StatusNotFound)
		return
	}

	if err = h.services.CourseService.DeleteCourse(r.Context(), user, courseID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
