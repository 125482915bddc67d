package apperr

import (
	"errors"
	"net/http"
)

// Code identifies the error class. The set is closed; the HTTP layer
// matches on it instead of walking error chains.
type Code string

const (
	CodeValidation Code = "ValidationError"
	CodeAuth       Code = "UnauthorizedError"
	CodeDomain     Code = "DomainError"
	CodeForbidden  Code = "ForbiddenError"
	CodeNotFound   Code = "NotFoundError"
	CodeInternal   Code = "InternalError"
)

// FieldError describes a single violated field in a validation failure.
// Validation errors carry every violation, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error is a transport-agnostic structured application error. It pairs
// a machine-readable code with the HTTP status the transport layer
// should render, plus optional structured details and a correlation id.
type Error struct {
	Code    Code
	Status  int
	Message string
	Details any
	TraceID string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// WithTraceID returns a copy carrying the given correlation id. The id
// is supplied by the HTTP layer; this package never generates one.
func (e *Error) WithTraceID(id string) *Error {
	cp := *e
	cp.TraceID = id
	return &cp
}

// WithCause returns a copy wrapping the underlying error.
func (e *Error) WithCause(err error) *Error {
	cp := *e
	cp.cause = err
	return &cp
}

// Validation builds a 400 error listing all violated fields.
func Validation(message string, fields []FieldError) *Error {
	return &Error{Code: CodeValidation, Status: http.StatusBadRequest, Message: message, Details: fields}
}

// Auth builds a 401 error. Messages are deliberately coarse so callers
// cannot tell which half of a credential pair was wrong.
func Auth(message string) *Error {
	return &Error{Code: CodeAuth, Status: http.StatusUnauthorized, Message: message}
}

// Domain builds a 400 error for business-rule violations on
// syntactically valid input.
func Domain(message string, details any) *Error {
	return &Error{Code: CodeDomain, Status: http.StatusBadRequest, Message: message, Details: details}
}

// Forbidden builds a 403 error (authenticated but not authorized).
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Status: http.StatusForbidden, Message: message}
}

// NotFound builds a 404 error.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Status: http.StatusNotFound, Message: message}
}

// Internal builds a 500 error. Used only at the transport boundary for
// failures the application layer propagated opaquely.
func Internal(message string) *Error {
	return &Error{Code: CodeInternal, Status: http.StatusInternalServerError, Message: message}
}

// From extracts the structured error from err's chain, or nil if the
// error is opaque (infrastructure failures map to 500 at the boundary).
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
