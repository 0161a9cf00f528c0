package model

import (
	"github.com/pkg/errors"
)

// Error codes
const (
	BadRequestError = "BAD_REQUEST"
	NotFoundError   = "NOT_FOUND"
	DBError         = "DB_ERROR"
)

// AppError is the error type surfaced by usecases and repositories.
type AppError struct {
	Code    string
	Message string
	err     error
}

func (e *AppError) Error() string {
	if e.err == nil {
		return e.Message
	}
	return e.Message + ": " + e.err.Error()
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.err
}

// Cause returns the underlying cause, for github.com/pkg/errors.
func (e *AppError) Cause() error {
	return e.err
}

// Detail is the raw message of the underlying cause, empty if there is none.
func (e *AppError) Detail() string {
	if e.err == nil {
		return ""
	}
	return errors.Cause(e.err).Error()
}

// NewValidationError returns an error for input that fails validation.
func NewValidationError(message string) error {
	return &AppError{
		Code:    BadRequestError,
		Message: message,
	}
}

// NewInvalidParamError returns an error for an unreadable request.
func NewInvalidParamError(message string, err error) error {
	return &AppError{
		Code:    BadRequestError,
		Message: message,
		err:     err,
	}
}

// NewNotFoundError returns an error for a todo that does not exist.
func NewNotFoundError(id any) error {
	return &AppError{
		Code:    NotFoundError,
		Message: "Todo item not found",
		err:     errors.Errorf("todo %v does not exist", id),
	}
}

// NewDBError wraps an error returned by the storage engine.
func NewDBError(err error) error {
	return &AppError{
		Code:    DBError,
		Message: "Database error",
		err:     errors.WithStack(err),
	}
}

// IsAppError reports whether err is an *AppError with the given code.
func IsAppError(err error, code string) bool {
	var e *AppError
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}
