package responses

import (
	"errors"
	"net/http"
	"time"

	"staffhub/internal/structs"
)

// Response is the envelope every endpoint writes. Error responses follow the
// {timestamp, status, error, message} shape, validation failures additionally
// carry the full field violation map.
type Response struct {
	Timestamp        time.Time           `json:"timestamp"`
	Status           int                 `json:"status"`
	Error            string              `json:"error,omitempty"`
	Message          string              `json:"message,omitempty"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`
	Payload          interface{}         `json:"payload,omitempty"`
}

func Success(payload interface{}) Response {
	return Response{
		Timestamp: time.Now(),
		Status:    http.StatusOK,
		Payload:   payload,
	}
}

func Created(payload interface{}) Response {
	return Response{
		Timestamp: time.Now(),
		Status:    http.StatusCreated,
		Payload:   payload,
	}
}

func Deleted(message string) Response {
	return Response{
		Timestamp: time.Now(),
		Status:    http.StatusOK,
		Message:   message,
	}
}

func BadRequest(message string) Response {
	return Response{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   message,
	}
}

// FromError classifies a business-rule failure into a response. Every known
// error kind is matched explicitly; anything unrecognized becomes an opaque
// 500 rather than leaking internals or masquerading as a 404.
func FromError(err error) Response {
	var vErr *structs.ValidationError
	if errors.As(err, &vErr) {
		return Response{
			Timestamp:        time.Now(),
			Status:           http.StatusBadRequest,
			Error:            "Validation error",
			Message:          vErr.Error(),
			ValidationErrors: vErr.Violations,
		}
	}

	switch {
	case errors.Is(err, structs.ErrNotFound):
		return Response{
			Timestamp: time.Now(),
			Status:    http.StatusNotFound,
			Error:     http.StatusText(http.StatusNotFound),
			Message:   err.Error(),
		}
	case errors.Is(err, structs.ErrDuplicateEmail),
		errors.Is(err, structs.ErrInvalidDateRange),
		errors.Is(err, structs.ErrUnknownField),
		errors.Is(err, structs.ErrInvalidEnumValue),
		errors.Is(err, structs.ErrInvalidDateFormat),
		errors.Is(err, structs.ErrInvalidFieldValue),
		errors.Is(err, structs.ErrCannotDeleteOngoing):
		return BadRequest(err.Error())
	}

	return Response{
		Timestamp: time.Now(),
		Status:    http.StatusInternalServerError,
		Error:     http.StatusText(http.StatusInternalServerError),
		Message:   "An unexpected error occurred",
	}
}
