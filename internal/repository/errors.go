// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to perform an operation on a resource owned by
// someone else, while ErrConflict signals that an operation
// cannot proceed due to existing dependent records (e.g. two shifts
// for the same operator, date and period).
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an insert or update collides with a
// uniqueness constraint, such as a second shift for the same
// operator, date and period. Handlers should translate this into
// an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrProtected is returned when a delete cannot proceed because other
// records still reference the row through a RESTRICT relationship,
// such as deleting a user who still has reservations. Handlers
// should translate this into an HTTP 409 response.
var ErrProtected = errors.New("protected")
