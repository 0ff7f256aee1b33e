package models

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	ErrKindValidation         ErrorKind = "VALIDATION"
	ErrKindNotFound           ErrorKind = "NOT_FOUND"
	ErrKindForbidden          ErrorKind = "FORBIDDEN"
	ErrKindConflict           ErrorKind = "CONFLICT"
	ErrKindInvalidCredentials ErrorKind = "INVALID_CREDENTIALS"
	ErrKindInternal           ErrorKind = "INTERNAL"
)

// AppError carries the failure class across the handler boundary so the API
// layer can map it to a status code without parsing messages.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &AppError{Kind: ErrKindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &AppError{Kind: ErrKindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewForbiddenError(format string, args ...interface{}) error {
	return &AppError{Kind: ErrKindForbidden, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) error {
	return &AppError{Kind: ErrKindConflict, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidCredentialsError(format string, args ...interface{}) error {
	return &AppError{Kind: ErrKindInvalidCredentials, Message: fmt.Sprintf(format, args...)}
}

// KindOf sees through errors.Wrap chains. Anything without an AppError in the
// chain is an internal failure.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrKindInternal
}
