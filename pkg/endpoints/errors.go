package endpoints

import (
	"errors"
	"net/http"
)

// ErrTableNotFound indicates a route table reference that no resolver knows.
var ErrTableNotFound = errors.New("route table not found")

// MapHTTPStatus maps parser errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrTableNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
