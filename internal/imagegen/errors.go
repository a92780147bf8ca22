package imagegen

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrGenerationFailed indicates the provider call failed or returned no image.
	ErrGenerationFailed = errors.New("image generation failed")
	// ErrFetchFailed indicates the image URL could not be retrieved.
	ErrFetchFailed = errors.New("image fetch failed")
	// ErrNoImage indicates a successful provider response without an image.
	ErrNoImage = errors.New("provider returned no image")
	// ErrImageTooLarge indicates the fetched image exceeds max_image_size.
	ErrImageTooLarge = errors.New("image exceeds size limit")
)

// ProviderError is a non-2xx response from an image provider or image host.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// MapHTTPStatus maps image pipeline errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrGenerationFailed) || errors.Is(err, ErrFetchFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
