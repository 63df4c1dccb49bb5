package dto

import (
	"net/http"
	"time"
)

// Machine-readable error codes carried in ErrorResponse.Error. Clients
// branch on these, so they are part of the API contract.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeUnauthorized   = "unauthorized"
	ErrCodeForbidden      = "forbidden"
	ErrCodeNotFound       = "not_found"
	ErrCodeConflict       = "conflict"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeTimeout        = "timeout"
	ErrCodeInternal       = "internal_error"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data carries the endpoint payload, such as a PackingResult or a
	// ValidationRecord.
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated.
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"lines: at least one order line is required"`
	// Details maps field names to their validation messages.
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

var statusErrCodes = map[int]string{
	http.StatusBadRequest:      ErrCodeInvalidRequest,
	http.StatusUnauthorized:    ErrCodeUnauthorized,
	http.StatusForbidden:       ErrCodeForbidden,
	http.StatusNotFound:        ErrCodeNotFound,
	http.StatusConflict:        ErrCodeConflict,
	http.StatusTooManyRequests: ErrCodeRateLimit,
	http.StatusRequestTimeout:  ErrCodeTimeout,
	http.StatusGatewayTimeout:  ErrCodeTimeout,
}

// ErrCodeFromStatus returns the error code matching an HTTP status,
// defaulting to ErrCodeInternal for anything unmapped.
func ErrCodeFromStatus(status int) string {
	if code, ok := statusErrCodes[status]; ok {
		return code
	}
	return ErrCodeInternal
}
