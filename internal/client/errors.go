// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrMissingCommand  = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidCourseID = errors.New("course id must be a positive integer")
	ErrInvalidInput    = errors.New("input is not valid JSON")
)
