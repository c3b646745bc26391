// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the course catalog.
//
// It owns the listener lifecycle: startup, stop-signal handling and
// graceful shutdown that lets in-flight requests finish.
package server
