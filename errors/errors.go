package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is/As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors

func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

// ErrValidation reports missing or malformed request input. It is raised
// before any remote call is made.
func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION,
		Message:  message,
	}
}

// Gateway Errors
//
// Every transcript/publish gateway translates its remote outcome into one of
// the constructors below, so handlers only ever see this taxonomy.

// ErrInvalidCredential maps a remote 401 (or an auth-scoped application
// error) for the named platform.
func ErrInvalidCredential(platform string) AppError {
	return AppError{
		HTTPCode: http.StatusUnauthorized,
		Code:     ErrorCode_INVALID_CREDENTIAL,
		Message:  fmt.Sprintf("Invalid %s credentials", platform),
	}
}

func ErrForbidden(message string) AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_FORBIDDEN,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// ErrUpstream wraps any other non-success remote status together with the
// best-effort message extracted from the remote payload.
func ErrUpstream(status int, message string) AppError {
	if message == "" {
		message = fmt.Sprintf("Upstream returned status %d", status)
	}
	return AppError{
		HTTPCode: status,
		Code:     ErrorCode_UPSTREAM,
		Message:  message,
	}.WithDetail("upstream_status", fmt.Sprintf("%d", status))
}

// ErrNetwork reports a transport-level failure reaching the named service.
func ErrNetwork(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_NETWORK,
		Message:  fmt.Sprintf("Network error: could not reach %s", service),
	}
}

// Store Errors

func ErrStoreFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  fmt.Sprintf("Credential store operation failed: %s", operation),
	}
}
