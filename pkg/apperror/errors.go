package apperror

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Common error codes
const (
	CodeNotFound ErrorCode = iota + 1000
	CodeValidation
	CodeDuplicateCredential
	CodeInvalidCredentials
	CodeUnauthenticated
	CodeInternal
)

// FieldError describes a validation failure on a single form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents an application error
type AppError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	Err     error        `json:"-"`
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

// StatusCode maps the error code to the HTTP status returned at the
// request boundary.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeDuplicateCredential:
		return http.StatusConflict
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors
func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Validation(fields ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "validation failed",
		Fields:  fields,
	}
}

func DuplicateCredential(err error) *AppError {
	return &AppError{
		Code:    CodeDuplicateCredential,
		Message: "credential already registered",
		Err:     err,
	}
}

// InvalidCredentials deliberately carries a generic message so the
// response never reveals whether the email or the password was wrong.
func InvalidCredentials(err error) *AppError {
	return &AppError{
		Code:    CodeInvalidCredentials,
		Message: "invalid credentials",
		Err:     err,
	}
}

func Unauthenticated() *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: "authentication required",
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// IsCode reports whether err is an *AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
