package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingTenant is returned when an operation is invoked without a tenant identifier.
var ErrMissingTenant = errors.New("tenant identifier is required")

// ErrPatientNotFound is returned when the patient does not exist within the tenant.
var ErrPatientNotFound = fmt.Errorf("patient %w", ErrNotFound)

// ErrPaymentNotFound is returned when the payment does not exist within the tenant.
var ErrPaymentNotFound = fmt.Errorf("payment %w", ErrNotFound)

// ErrPersistence marks failures of the underlying store.
var ErrPersistence = errors.New("persistence error")

// AppError carries an HTTP-ish status code and a safe message alongside the cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes both ErrPersistence and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPersistence}
	}
	return []error{ErrPersistence, e.Err}
}

// NewAppError wraps a storage failure.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Category maps an error to the short machine-readable category used in API responses.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingTenant):
		return "missing_tenant"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrPatientNotFound):
		return "patient_not_found"
	case errors.Is(err, ErrPaymentNotFound):
		return "payment_not_found"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicate):
		return "conflict"
	default:
		return "persistence_error"
	}
}
