// Package handlers implements HTTP handlers for the closette API.
package handlers

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"provide imageReference or textInput"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// apiError is what huma renders for every failed operation. It replaces
// huma's problem+json body with the flat {"error": "..."} envelope.
type apiError struct {
	status  int
	Message string `json:"error"`
}

func (e *apiError) Error() string  { return e.Message }
func (e *apiError) GetStatus() int { return e.status }

func init() {
	huma.NewError = newError
}

// newError folds validation details into the message. Schema violations
// are client input errors and are reported as 400 rather than 422.
func newError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg += ": " + strings.Join(details, "; ")
	}

	return &apiError{status: status, Message: msg}
}
