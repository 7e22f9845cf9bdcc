// Package login provides HTTP handlers and helpers for user authentication.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed
	// or fails validation.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the provided email and/or password
	// are not valid.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled is returned when the account exists but has been
	// deactivated by an administrator.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrBackendNotConfigured is returned when sign-in is attempted while the
	// application runs on the mock gateway.
	ErrBackendNotConfigured = errors.New("backend not configured")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")
)
