package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jonathan/resume-timeline/internal/timeline"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, timeline.ErrUnknownSection):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the error text safe to send to clients.
func PublicMessage(err error) string {
	switch HTTPStatus(err) {
	case http.StatusNotFound:
		return err.Error()
	case http.StatusServiceUnavailable:
		return "resume is not available yet"
	default:
		return "internal server error"
	}
}
