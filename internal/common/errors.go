// Package common defines sentinel errors shared across service and
// repository layers. Callers should use errors.Is / errors.As to match.
package common

import "errors"

// ErrorNotFound is returned by repositories when no row matches, including
// rows that exist but belong to a different owner token.
var ErrorNotFound = errors.New("not found")

// ValidationError carries a user-facing message describing a rejected
// request field. Handlers translate it to a 400 response with the message
// verbatim.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string {
	return e.Message
}
