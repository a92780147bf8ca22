package imagegen

import (
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/floorplan/pkg/formatting"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DefaultOpenAIModel = "flux"
	DefaultGeminiModel = "imagen-4.0-generate-001"
)

// Config holds image provider and fetch settings.
type Config struct {
	Provider     string `toml:"provider"`
	BaseURL      string `toml:"base_url"`
	APIKey       string `toml:"api_key"`
	Model        string `toml:"model"`
	Size         string `toml:"size"`
	Timeout      string `toml:"timeout"`
	MaxImageSize string `toml:"max_image_size"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Provider     string
	BaseURL      string
	APIKey       string
	Model        string
	Size         string
	Timeout      string
	MaxImageSize string
}

// TimeoutDuration returns Timeout as a time.Duration. Zero disables the client timeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// MaxImageSizeBytes returns MaxImageSize in bytes.
func (c *Config) MaxImageSizeBytes() int64 {
	n, err := formatting.ParseBytes(c.MaxImageSize)
	if err != nil {
		return 20 * 1024 * 1024
	}
	return n
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	if c.Model == "" {
		c.Model = defaultModel(c.Provider)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Size != "" {
		c.Size = overlay.Size
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxImageSize != "" {
		c.MaxImageSize = overlay.MaxImageSize
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderOpenAI
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:1337"
	}
	if c.Size == "" {
		c.Size = "1024x1024"
	}
	if c.Timeout == "" {
		c.Timeout = "5m"
	}
	if c.MaxImageSize == "" {
		c.MaxImageSize = "20MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, field *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}

	set(env.Provider, &c.Provider)
	set(env.BaseURL, &c.BaseURL)
	set(env.APIKey, &c.APIKey)
	set(env.Model, &c.Model)
	set(env.Size, &c.Size)
	set(env.Timeout, &c.Timeout)
	set(env.MaxImageSize, &c.MaxImageSize)
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.BaseURL == "" {
			return fmt.Errorf("base_url required for provider %s", c.Provider)
		}
	case ProviderGemini:
		if c.APIKey == "" {
			return fmt.Errorf("api_key required for provider %s", c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider: %s", c.Provider)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if _, err := formatting.ParseBytes(c.MaxImageSize); err != nil {
		return fmt.Errorf("invalid max_image_size: %w", err)
	}
	return nil
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return DefaultGeminiModel
	}
	return DefaultOpenAIModel
}
