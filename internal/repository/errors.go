// Package repository defines the narrow data-access layer. The sentinel
// errors below let handlers distinguish failure classes without
// inspecting driver errors: ErrNotFound maps to HTTP 404, ErrForbidden
// to 403.
package repository

import "errors"

// ErrNotFound is returned when a referenced anime or review id does not
// exist in the store.
var ErrNotFound = errors.New("record not found")

// ErrForbidden is returned when the caller fails the shared-secret or
// review-password check. No further detail is attached.
var ErrForbidden = errors.New("forbidden")
