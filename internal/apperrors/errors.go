package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForeignKey indicates that a write referenced a row that does not exist.
var ErrForeignKey = errors.New("referenced resource does not exist")

// ErrUnavailable indicates that the backing store could not be reached.
var ErrUnavailable = errors.New("store unavailable")

// Kind classifies an AppError.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindConflict             Kind = "conflict"
	KindReferentialIntegrity Kind = "referential_integrity_violation"
	KindValidation           Kind = "validation"
	KindStoreUnavailable     Kind = "store_unavailable"
	KindUnclassified         Kind = "unclassified"
)

// AppError is the single typed failure returned by repositories and services.
// Code holds the HTTP status the boundary should answer with.
type AppError struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the package sentinels by kind.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrDuplicate:
		return e.Kind == KindConflict
	case ErrForeignKey:
		return e.Kind == KindReferentialIntegrity
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrUnavailable:
		return e.Kind == KindStoreUnavailable
	}
	return false
}

// IsClientError reports whether the error is caused by the request rather than the server.
func (e *AppError) IsClientError() bool {
	return e.Code >= 400 && e.Code < 500
}

// NewAppError creates an unclassified error. A code of 0 defaults to 500.
func NewAppError(code int, message string, err error) *AppError {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return &AppError{Kind: KindUnclassified, Code: code, Message: message, Err: err}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Code: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Code: http.StatusConflict, Message: message}
}

func NewReferentialIntegrityError(message string) *AppError {
	return &AppError{Kind: KindReferentialIntegrity, Code: http.StatusUnprocessableEntity, Message: message}
}

func NewValidationFailedError(message string) *AppError {
	return &AppError{Kind: KindValidation, Code: http.StatusBadRequest, Message: message}
}

func NewStoreUnavailableError(message string, err error) *AppError {
	return &AppError{Kind: KindStoreUnavailable, Code: http.StatusServiceUnavailable, Message: message, Err: err}
}

// From returns the AppError carried by err. Bare sentinels are promoted to their kind
// and anything else becomes an unclassified 500 whose message hides the cause.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return &AppError{Kind: KindNotFound, Code: http.StatusNotFound, Message: err.Error(), Err: err}
	case errors.Is(err, ErrDuplicate):
		return &AppError{Kind: KindConflict, Code: http.StatusConflict, Message: err.Error(), Err: err}
	case errors.Is(err, ErrForeignKey):
		return &AppError{Kind: KindReferentialIntegrity, Code: http.StatusUnprocessableEntity, Message: err.Error(), Err: err}
	case errors.Is(err, ErrValidation):
		return &AppError{Kind: KindValidation, Code: http.StatusBadRequest, Message: err.Error(), Err: err}
	case errors.Is(err, ErrUnavailable):
		return &AppError{Kind: KindStoreUnavailable, Code: http.StatusServiceUnavailable, Message: err.Error(), Err: err}
	}
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
