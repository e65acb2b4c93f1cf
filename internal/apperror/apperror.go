// Package apperror defines the failures accessors report to the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failure with a client-facing message and the HTTP status it
// maps to
type Error struct {
	Status int
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput reports a malformed id, a numeric value where text was
// expected, a missing field or an unparseable vote delta
func InvalidInput(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Msg: msg}
}

// InvalidInputf is InvalidInput with a formatted message
func InvalidInputf(format string, args ...interface{}) *Error {
	return InvalidInput(fmt.Sprintf(format, args...))
}

// NotFound reports a referenced entity that does not exist
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Msg: msg}
}

// NotFoundf is NotFound with a formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

// Wrap attaches an underlying cause to e, kept out of the client message
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// As extracts an *Error from err's chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err carries a 404 failure
func IsNotFound(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Status == http.StatusNotFound
}

// IsInvalidInput reports whether err carries a 400 failure
func IsInvalidInput(err error) bool {
	appErr, ok := As(err)
	return ok && appErr.Status == http.StatusBadRequest
}
