package plans

import (
	"errors"
	"net/http"
)

var (
	ErrIndexOutOfRange = errors.New("plan index out of range")
	ErrNoPending       = errors.New("no pending action")
	ErrStaleToken      = errors.New("confirmation token does not match the pending action")
	ErrSessionNotFound = errors.New("session not found")
	ErrExportDisabled  = errors.New("plan export is not configured")
)

// MapHTTPStatus maps plan errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrIndexOutOfRange), errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoPending), errors.Is(err, ErrStaleToken):
		return http.StatusConflict
	case errors.Is(err, ErrExportDisabled):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
