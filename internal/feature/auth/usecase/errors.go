// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on signin failure.
	// It is deliberately identical for "no such user" and "wrong password"
	// so callers cannot enumerate registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
