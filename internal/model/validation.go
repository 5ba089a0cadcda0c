package model

import "fmt"

// ValidationError reports a single failed self-consistency check on an
// entity.  Field names the offending column and Message carries a stable,
// client-facing explanation.  Handlers translate these into 400 responses
// with the field attached, so the messages must not change casually.
type ValidationError struct {
    Field   string // name of the offending field (snake_case, as exposed over the API)
    Message string // human readable reason
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
    return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// invalid is a shorthand used by the Validate methods in this package.
func invalid(field, message string) *ValidationError {
    return &ValidationError{Field: field, Message: message}
}
