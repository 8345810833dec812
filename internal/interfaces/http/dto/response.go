package dto

import "net/http"

// ErrorResponse is the error body for every failed request
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewErrorResponseWithDetail creates an error response with extra context
func NewErrorResponseWithDetail(message, detail string) ErrorResponse {
	return ErrorResponse{Error: message, Detail: detail}
}

// Error codes shared between handlers and middleware
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
)

// statusByCode maps domain error codes to HTTP status codes
var statusByCode = map[string]int{
	ErrCodeBadRequest:     http.StatusBadRequest,
	ErrCodeInvalidInput:   http.StatusBadRequest,
	"VALIDATION_ERROR":    http.StatusBadRequest,
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,
	ErrCodeNotFound:       http.StatusNotFound,
	ErrCodeConflict:       http.StatusConflict,
	ErrCodeAlreadyExists:  http.StatusConflict,
	"USERNAME_TAKEN":      http.StatusConflict,
	ErrCodeInternal:       http.StatusInternalServerError,
}

// GetHTTPStatus resolves an error code to its HTTP status, defaulting to 500
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
