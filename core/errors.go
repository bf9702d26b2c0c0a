package core

import (
	"errors"
	"fmt"
)

// FieldError is used to indicate an error with a specific form field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// RemoteError is an application-level rejection: the backend was
// reached but answered non-2xx. Message carries the backend's own
// human-readable text when the error body had one.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend rejected request (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend rejected request (%d)", e.StatusCode)
}

// RemoteMessage returns the backend's message when err carries one,
// else the given generic fallback text. Transport failures and
// message-less rejections both end up with the fallback.
func RemoteMessage(err error, fallback string) string {
	var rerr *RemoteError
	if errors.As(err, &rerr) && rerr.Message != "" {
		return rerr.Message
	}
	return fallback
}
