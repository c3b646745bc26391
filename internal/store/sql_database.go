// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/migrations"
	"github.com/sethvargo/go-retry"
)

// Supported database drivers. The values double as database/sql driver names
// and goose dialect names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	defaultQueryTimeout = 5 * time.Second
	defaultRetryBase    = 50 * time.Millisecond
)

// DB wraps a *sql.DB with the per-dialect query builder, error classifier
// and the timeout/retry policy applied to every repository call.
type DB struct {
	*sql.DB

	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator

	queryTimeout time.Duration
	readRetries  uint64
	retryBase    time.Duration

	logger *logger.Logger
}

func newDB(conn *sql.DB, driver string, cfg config.DB, log *logger.Logger) *DB {
	db := &DB{
		DB:           conn,
		driver:       driver,
		queryTimeout: cfg.QueryTimeout,
		readRetries:  uint64(max(cfg.ReadRetries, 0)),
		retryBase:    defaultRetryBase,
		logger:       log,
	}

	if db.queryTimeout <= 0 {
		db.queryTimeout = defaultQueryTimeout
	}

	switch driver {
	case DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Migrate applies all pending schema migrations for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// read runs a read-only operation under the query timeout and retries it
// with exponential backoff while the classifier reports the failure as
// [Retryable]. Each attempt gets its own timeout.
func (db *DB) read(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.readRetries, retry.NewExponential(db.retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, db.queryTimeout)
		defer cancel()

		err := op(attemptCtx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("retryable database error, retrying read")
			return retry.RetryableError(err)
		}
		return err
	})
}

// write runs a mutating operation under the query timeout. Writes are never
// retried: a create that reached the server but lost its reply would be
// applied twice.
func (db *DB) write(ctx context.Context, op func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, db.queryTimeout)
	defer cancel()

	return op(ctx)
}
