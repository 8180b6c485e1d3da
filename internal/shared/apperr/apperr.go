// Package apperr defines the uniform error envelope surfaced to API callers.
// Every failure that crosses the service boundary carries a numeric status-like
// code, a human-readable message and the time the failure was produced.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// MsgInvalidCredentials is the single message used for every credential
// failure (unknown user, missing hash, wrong password). Keeping one value
// prevents user-enumeration through message differences.
const MsgInvalidCredentials = "User/Password not valid"

// Error is the typed failure returned by usecases and rendered by handlers.
type Error struct {
	// Code is an HTTP-status-like numeric code (400/401/404/409/500).
	Code int `json:"code"`

	// Message is a safe, human-readable description. It never contains
	// stack traces or implementation detail.
	Message string `json:"message"`

	// Timestamp records when the failure was produced.
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// New creates an Error with the given code and message, stamped with the
// current time.
func New(code int, message string) *Error {
	return &Error{Code: code, Message: message, Timestamp: time.Now()}
}

// Validation reports malformed or rule-violating input (400).
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// InvalidCredentials reports a failed login attempt (400). The message is
// fixed; success and failure paths must not reveal which check failed.
func InvalidCredentials() *Error {
	return New(http.StatusBadRequest, MsgInvalidCredentials)
}

// Unauthorized reports an invalid, malformed or expired token (401).
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NotFound reports a missing record (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict reports a uniqueness violation (409).
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Internal reports an unexpected failure (500). Only the message string of the
// original error crosses the boundary.
func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// From returns err unchanged when it already is (or wraps) an *Error, and
// otherwise converts it into an Internal error preserving the message for
// diagnostics.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err.Error())
}
