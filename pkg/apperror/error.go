package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that is safe to surface to the caller.
// Code doubles as the HTTP status used by the delivery layer.
type AppError struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
	Err     error               `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports a malformed or incomplete payload with per-field messages.
func Validation(message string, details map[string][]string) *AppError {
	e := New(http.StatusBadRequest, message, nil)
	e.Details = details
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries an AppError with the given code.
func IsCode(err error, code int) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
