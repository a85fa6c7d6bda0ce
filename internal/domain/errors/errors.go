// Package errors defines the closed set of failures a store can report.
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code, 0 when no response was received
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Kind tags a StoreError. The set is closed.
type Kind int

const (
	// KindValidation carries server or local field-level messages.
	KindValidation Kind = iota + 1
	// KindAuthorization is a missing, expired or rejected credential.
	KindAuthorization
	// KindNotFound means the identifier has no matching record.
	KindNotFound
	// KindTransport is a failure without a structured server payload.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// StoreError is the normalized error payload held in a store's status.
// Fields is only populated for KindValidation.
type StoreError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	detail    string
	fields    map[string][]string
	cause     error
}

var _ AppError = (*StoreError)(nil)

// NewValidationError creates a validation error from a detail message and a field-message map.
func NewValidationError(httpCode int, detail string, fields map[string][]string) *StoreError {
	return &StoreError{
		kind:      KindValidation,
		httpCode:  httpCode,
		errorCode: "VALIDATION_FAILED",
		message:   "Input validation failed",
		detail:    detail,
		fields:    cloneFields(fields),
	}
}

// NewAuthorizationError creates an authorization error.
func NewAuthorizationError(httpCode int, detail string) *StoreError {
	return &StoreError{
		kind:      KindAuthorization,
		httpCode:  httpCode,
		errorCode: "UNAUTHORIZED",
		message:   "Authorization failed",
		detail:    detail,
	}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(detail string) *StoreError {
	return &StoreError{
		kind:      KindNotFound,
		httpCode:  http.StatusNotFound,
		errorCode: "NOT_FOUND",
		message:   "Resource not found",
		detail:    detail,
	}
}

// NewTransportError creates a transport error. httpCode is 0 when no response arrived.
func NewTransportError(httpCode int, message string, cause error) *StoreError {
	if message == "" {
		message = "Request failed"
	}

	return &StoreError{
		kind:      KindTransport,
		httpCode:  httpCode,
		errorCode: "TRANSPORT_FAILED",
		message:   message,
		cause:     cause,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	var b strings.Builder
	b.WriteString(e.kind.String())
	b.WriteString(": ")
	if e.detail != "" {
		b.WriteString(e.detail)
	} else {
		b.WriteString(e.message)
	}
	if len(e.fields) > 0 {
		keys := make([]string, 0, len(e.fields))
		for k := range e.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "; %s: %s", k, strings.Join(e.fields[k], ", "))
		}
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}

	return b.String()
}

// Unwrap exposes the underlying cause of transport errors.
func (e *StoreError) Unwrap() error {
	return e.cause
}

// Kind returns the error's tag.
func (e *StoreError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	if e.detail != "" {
		return e.detail
	}
	if e.cause != nil {
		return e.cause.Error()
	}

	return ""
}

// Detail returns the server's "detail" message, if any.
func (e *StoreError) Detail() string {
	return e.detail
}

// Fields returns a copy of the field-level messages.
func (e *StoreError) Fields() map[string][]string {
	return cloneFields(e.fields)
}

// WithMessage returns a copy carrying a different user-facing message.
func (e *StoreError) WithMessage(message string) *StoreError {
	cp := *e
	cp.message = message
	cp.fields = cloneFields(e.fields)

	return &cp
}

// MarshalJSON renders the error for command output.
func (e *StoreError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     string              `json:"kind"`
		HTTPCode int                 `json:"httpCode,omitempty"`
		Code     string              `json:"code"`
		Message  string              `json:"message"`
		Detail   string              `json:"detail,omitempty"`
		Fields   map[string][]string `json:"fields,omitempty"`
	}{
		Kind:     e.kind.String(),
		HTTPCode: e.httpCode,
		Code:     e.errorCode,
		Message:  e.message,
		Detail:   e.detail,
		Fields:   e.fields,
	})
}

// Is matches another StoreError of the same kind, so errors.Is(err, ErrNotFound) works.
func (e *StoreError) Is(target error) bool {
	t, ok := target.(*StoreError)
	if !ok {
		return false
	}

	return t.kind == e.kind && t.errorCode == e.errorCode && t.detail == "" && t.cause == nil
}

// Sentinels usable with errors.Is.
var (
	ErrValidation    = &StoreError{kind: KindValidation, errorCode: "VALIDATION_FAILED"}
	ErrAuthorization = &StoreError{kind: KindAuthorization, errorCode: "UNAUTHORIZED"}
	ErrNotFound      = &StoreError{kind: KindNotFound, errorCode: "NOT_FOUND"}
	ErrTransport     = &StoreError{kind: KindTransport, errorCode: "TRANSPORT_FAILED"}
)

func cloneFields(in map[string][]string) map[string][]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}

	return out
}
