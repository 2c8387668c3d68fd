// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the pool and the repositories. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrPoolExhausted is returned by [Pool.Checkout] when no connection
	// becomes available within the configured checkout timeout.
	ErrPoolExhausted = errors.New("connection pool exhausted")

	// ErrConnectFailed is returned by [Pool.Checkout] when opening a new
	// network connection to the database fails. The failure is surfaced to
	// the caller of Checkout and never crashes the process.
	ErrConnectFailed = errors.New("failed to connect to database")

	// ErrQueryFailed wraps driver-level failures while executing a query.
	// It is a fault, distinct from the [ErrNotFound] business outcome.
	ErrQueryFailed = errors.New("query execution failed")

	// ErrNotFound is the distinguished zero-matched-row outcome for
	// fetch-by-id, update, and delete. It is an expected result, not a fault,
	// and must never be conflated with connectivity or query errors.
	ErrNotFound = errors.New("record was not found")

	// ErrUsernameTaken is returned when user creation violates the unique
	// username constraint.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails before it reaches the database.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
