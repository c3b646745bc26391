// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the API handlers and
// the command-line client.
//
// They are the exact texts clients see in {"message": ...} and
// {"errors": [...]} bodies, so changing one is a breaking change.
package app

const (
	MsgWelcome = "Welcome to the REST API project!"

	// MsgRouteNotFound answers unknown paths and unsupported methods alike.
	MsgRouteNotFound = "Route Not Found"

	MsgAccessDenied   = "Access Denied"
	MsgForbidden      = "Access to this method is denied"
	MsgCourseNotFound = "Course does not exist"

	MsgInternalServerError = "Internal Server Error"
	MsgRequestTimeout      = "Request Timeout"
	MsgTokenAuthDisabled   = "Token authentication is disabled"

	// MsgInvalidJSON is the single entry of the errors list for a body that
	// does not decode.
	MsgInvalidJSON = "Invalid JSON was passed"
	MsgInvalidGzip = "Invalid gzip data"

	MsgAccountCreated = "Account successfully created!"
	MsgCourseCreated  = "Course successfully created!"
	MsgCourseUpdated  = "Course updated"
	MsgCourseDeleted  = "Course deleted"
)
