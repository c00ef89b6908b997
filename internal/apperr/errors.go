// Package apperr holds the request-level error taxonomy. Services return
// these sentinels (possibly wrapped) and handlers map them to HTTP statuses.
//
// Ownership violations are always reported as ErrNotFound so callers cannot
// distinguish "does not exist" from "belongs to someone else".
package apperr

import "errors"

var (
	ErrValidation         = errors.New("invalid request")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("account already connected")
	ErrAccountNotFound    = errors.New("social account not found")
)
