package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "user not found" and "wrong password"
	// so that login failures never reveal whether a username exists.
	ErrInvalidCredentials = errors.New("invalid username/password")

	// ErrHashingFault marks an internal credential-hashing failure. It maps
	// to a generic server failure, never to a login outcome.
	ErrHashingFault = errors.New("credential hashing fault")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
