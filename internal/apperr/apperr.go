// Package apperr is the coded error shared by the waitlist, the exempt
// registry and the HTTP layer that maps codes to statuses.
package apperr

import "errors"

// Code is a machine-readable error kind.
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeNotFound        Code = "NOT_FOUND"
	CodeUnauthorized    Code = "UNAUTHORIZED"
)

// Sentinels for errors.Is; matching is by code only.
var (
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument}
	ErrAlreadyExists   = &Error{Code: CodeAlreadyExists}
	ErrNotFound        = &Error{Code: CodeNotFound}
	ErrUnauthorized    = &Error{Code: CodeUnauthorized}
)

// Error carries a code and the message shown to callers.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return e.Message
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf extracts the code from err, or "" when err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
