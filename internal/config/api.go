package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/floorplan/pkg/formatting"
	"github.com/JaimeStill/floorplan/pkg/middleware"
	"github.com/JaimeStill/floorplan/pkg/openapi"
	"github.com/JaimeStill/floorplan/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "FLOORPLAN_CORS_ENABLED",
	Origins:          "FLOORPLAN_CORS_ORIGINS",
	AllowedMethods:   "FLOORPLAN_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "FLOORPLAN_CORS_ALLOWED_HEADERS",
	ExposedHeaders:   "FLOORPLAN_CORS_EXPOSED_HEADERS",
	AllowCredentials: "FLOORPLAN_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "FLOORPLAN_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "FLOORPLAN_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "FLOORPLAN_PAGINATION_MAX_PAGE_SIZE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "FLOORPLAN_OPENAPI_TITLE",
	Description: "FLOORPLAN_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, CORS, pagination, and OpenAPI settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	Pagination  pagination.Config     `toml:"pagination"`
	OpenAPI     openapi.Config        `toml:"openapi"`
}

// MaxBodySizeBytes returns the request body limit in bytes.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 1 << 20
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if _, err := formatting.ParseBytes(c.MaxBodySize); err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("FLOORPLAN_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("FLOORPLAN_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}
