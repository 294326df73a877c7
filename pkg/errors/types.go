package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a failure for status mapping and diagnostics
type ErrorCode string

const (
	// ErrCodeBadRequest covers malformed or missing client input
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"
	// ErrCodeConfiguration covers missing operator-provided settings
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeUpstream covers failed or unusable provider calls
	ErrCodeUpstream ErrorCode = "UPSTREAM"
	// ErrCodeRateLimit is returned when a client exceeds its request budget
	ErrCodeRateLimit ErrorCode = "RATE_LIMIT"
	// ErrCodeNotFound is returned for unknown routes
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal covers anything unanticipated
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError is a structured application error. Message is what the client
// sees; Details and Cause are for operator diagnostics only.
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithHTTPCode overrides the status derived from the code
func (e *AppError) WithHTTPCode(status int) *AppError {
	e.HTTPCode = status
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeRateLimit:
		return http.StatusTooManyRequests
	case ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// BadRequest creates a client input error whose message is returned verbatim
func BadRequest(message string) *AppError {
	return New(ErrCodeBadRequest, message)
}

// ConfigError creates a configuration error. The client only ever sees the
// generic message; key and reason stay in the details.
func ConfigError(key string, reason string) *AppError {
	return New(ErrCodeConfiguration, "Search service configuration error").
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// UpstreamError creates a provider error relaying the provider's status.
// A zero or unwritable status maps to 500 and an empty status text to
// "Unknown error".
func UpstreamError(status int, statusText string, cause error) *AppError {
	if statusText == "" {
		statusText = "Unknown error"
	}
	e := Wrap(cause, ErrCodeUpstream, "Search API error: "+statusText)
	if status >= 100 && status <= 999 {
		e = e.WithHTTPCode(status)
	}
	return e
}

// Internal creates an unanticipated-fault error. The cause's message is
// surfaced when present.
func Internal(cause error) *AppError {
	msg := "An unexpected error occurred while processing your search"
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return Wrap(cause, ErrCodeInternal, msg)
}

// As returns err as an *AppError when one is in its chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == code
	}
	return false
}

// FromPanic converts a recovered panic value into an internal error. Errors
// and strings keep their message; other values fall back to the generic one.
func FromPanic(r interface{}) *AppError {
	var e *AppError
	switch v := r.(type) {
	case error:
		e = Internal(v)
	case string:
		e = Internal(stderrors.New(v))
	default:
		e = Internal(nil)
	}
	return e.WithDetail("panic", fmt.Sprintf("%v", r))
}
