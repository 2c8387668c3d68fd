// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import "errors"

var (
	// ErrDispatcherClosed is returned for messages submitted after Close.
	ErrDispatcherClosed = errors.New("dispatcher is closed")

	// ErrUnknownMessage is returned when a message variant has no handler.
	// With the closed message set this indicates a programming error.
	ErrUnknownMessage = errors.New("unknown message type")

	// ErrUnexpectedResult is returned by the typed wrappers when a worker
	// resolves a future with a value of the wrong type.
	ErrUnexpectedResult = errors.New("unexpected result type")
)
