// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-course-catalog/internal/logger"
)

func TestRun_InvalidConfig(t *testing.T) {
	err := run(context.Background(), []string{"-driver", "oracle", "-d", "dsn", "-a", "localhost:0"}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting configs")
}

// A failure after the storages are open is returned to the caller instead of
// exiting, so the deferred close still runs.
func TestRun_ReturnsErrorAfterStoragesOpened(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	args := []string{"-driver", "sqlite3", "-d", ":memory:", "-a", ln.Addr().String()}
	err = run(context.Background(), args, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error listening on")
}
