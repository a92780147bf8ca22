package reference

import (
	"errors"
	"net/http"
)

var (
	ErrNoDefaultCity = errors.New("no default city configured")
)

func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNoDefaultCity) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
