package housespec

import (
	"errors"
	"net/http"
)

// ErrInvalidInput indicates a form value outside its declared vocabulary or range.
var ErrInvalidInput = errors.New("invalid house specification")

// MapHTTPStatus maps housespec errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
