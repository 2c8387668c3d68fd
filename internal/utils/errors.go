// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var (
	// ErrInvalidSignature is returned when a token's signature does not
	// verify against the server's signing key.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrMalformedToken is returned when a token string is structurally
	// broken or its claims cannot be decoded.
	ErrMalformedToken = errors.New("malformed token")

	// ErrMalformedHash is returned when a stored credential hash cannot be
	// parsed. Callers must map it to a generic server failure, never to a
	// "wrong password" outcome.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrHashingInternal is returned when the hashing primitive itself fails
	// (e.g. the OS entropy source).
	ErrHashingInternal = errors.New("internal hashing fault")
)
