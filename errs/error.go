package errs

import (
	"errors"
	"fmt"
)

// Application error codes. Generic codes first, movie domain codes below.
const (
	EVALIDATION = "validation_error"
	EEXTERNAL   = "external_service_error"
	EINTERNAL   = "internal_service_error"
	EUNKNOWN    = "unknown_error"

	// movie errors
	EDUPLICATE = "duplicate_movie_exists"
	ENOTFOUND  = "movie_not_found"
	EDATABASE  = "database_error"
)

// Error is the application error carrier. Code is machine readable and
// drives the HTTP status mapping, Message is safe to show to a client.
// Err keeps the underlying cause for logs and is never serialized.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("application error: code=%s message=%s err=%v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("application error: code=%s message=%s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds an application error with a formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap builds an application error that keeps err as its cause.
func Wrap(err error, code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// ErrorCode returns the code of an application error, or EUNKNOWN for any
// other non-nil error.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EUNKNOWN
}

// ErrorMessage returns the message of an application error. Non-application
// errors yield a generic message so internals never leak to a client.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
