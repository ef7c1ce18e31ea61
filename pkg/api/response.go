package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/todaypickup/gateway/pkg/todaypickup"
)

// StatusType labels the outcome of an API response.
type StatusType string

const (
	StatusSuccess StatusType = "success"
	StatusError   StatusType = "error"
)

// ErrInvalidInput marks validation failures raised before any outbound
// call is made. Wrap it with fmt.Errorf("%w: ...") and match with
// errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ApiResponse represents the standard response envelope
type ApiResponse[T any] struct {
	Status  StatusType `json:"status"`          // Outcome label
	Code    int        `json:"code"`            // HTTP status code
	Message string     `json:"message"`         // Human-readable message
	Data    T          `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any        `json:"error,omitempty"` // Optional error detail for failures
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin handlers
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

// AsJSON converts the ApiResponse to a JSON string
func (r ApiResponse[T]) AsJSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NewSuccess(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  StatusSuccess,
		Code:    http.StatusOK,
		Message: message,
	}
}

func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  StatusSuccess,
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  StatusError,
		Code:    code,
		Message: message,
		Error:   err,
	}
}

// FromError maps the closed error set onto an outward response:
// validation failures become 400, upstream non-2xx responses are
// proxied through with their own status code and payload, transport
// failures become 502, anything else 500.
func FromError(err error) ApiResponse[any] {
	var statusErr *todaypickup.StatusError
	var unavailErr *todaypickup.UnavailableError

	switch {
	case errors.Is(err, ErrInvalidInput):
		return NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error())
	case errors.As(err, &statusErr):
		return NewErrorResponse(statusErr.StatusCode, "Upstream request failed", statusErr.Payload())
	case errors.As(err, &unavailErr):
		return NewErrorResponse(http.StatusBadGateway, "Upstream unavailable", unavailErr.Error())
	default:
		return NewErrorResponse(http.StatusInternalServerError, "Internal error", err.Error())
	}
}
