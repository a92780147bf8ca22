// Package config loads the service configuration from config.toml, an
// optional config.<env>.toml overlay, and FLOORPLAN_* environment variables.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/floorplan/internal/imagegen"
	"github.com/JaimeStill/floorplan/internal/plans"
	"github.com/JaimeStill/floorplan/pkg/database"
	"github.com/JaimeStill/floorplan/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvFloorplanEnv             = "FLOORPLAN_ENV"
	EnvFloorplanShutdownTimeout = "FLOORPLAN_SHUTDOWN_TIMEOUT"
	EnvFloorplanVersion         = "FLOORPLAN_VERSION"
	EnvFloorplanLogLevel        = "FLOORPLAN_LOG_LEVEL"
)

var databaseEnv = &database.Env{
	Host:            "FLOORPLAN_DB_HOST",
	Port:            "FLOORPLAN_DB_PORT",
	Name:            "FLOORPLAN_DB_NAME",
	User:            "FLOORPLAN_DB_USER",
	Password:        "FLOORPLAN_DB_PASSWORD",
	SSLMode:         "FLOORPLAN_DB_SSL_MODE",
	MaxOpenConns:    "FLOORPLAN_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "FLOORPLAN_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "FLOORPLAN_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "FLOORPLAN_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	Provider:         "FLOORPLAN_STORAGE_PROVIDER",
	ContainerName:    "FLOORPLAN_STORAGE_CONTAINER_NAME",
	ConnectionString: "FLOORPLAN_STORAGE_CONNECTION_STRING",
	Endpoint:         "FLOORPLAN_STORAGE_ENDPOINT",
	Region:           "FLOORPLAN_STORAGE_REGION",
	AccessKey:        "FLOORPLAN_STORAGE_ACCESS_KEY",
	SecretKey:        "FLOORPLAN_STORAGE_SECRET_KEY",
	UseSSL:           "FLOORPLAN_STORAGE_USE_SSL",
}

var imagesEnv = &imagegen.Env{
	Provider:     "FLOORPLAN_IMAGES_PROVIDER",
	BaseURL:      "FLOORPLAN_IMAGES_BASE_URL",
	APIKey:       "FLOORPLAN_IMAGES_API_KEY",
	Model:        "FLOORPLAN_IMAGES_MODEL",
	Size:         "FLOORPLAN_IMAGES_SIZE",
	Timeout:      "FLOORPLAN_IMAGES_TIMEOUT",
	MaxImageSize: "FLOORPLAN_IMAGES_MAX_IMAGE_SIZE",
}

var sessionsEnv = &plans.Env{
	MaxSessions: "FLOORPLAN_SESSIONS_MAX_SESSIONS",
	CookieName:  "FLOORPLAN_SESSIONS_COOKIE_NAME",
}

// Config is the root configuration for the floorplan service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	Images          imagegen.Config `toml:"images"`
	Sessions        plans.Config    `toml:"sessions"`
	API             APIConfig       `toml:"api"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
	LogLevel        string          `toml:"log_level"`
	LogFormat       string          `toml:"log_format"`
}

// Env returns the FLOORPLAN_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvFloorplanEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. Without a config.toml, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom is Load with config files resolved relative to dir.
func LoadFrom(dir string) (*Config, error) {
	cfg := &Config{}

	base := filepath.Join(dir, BaseConfigFile)
	if _, err := os.Stat(base); err == nil {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(dir); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	if overlay.LogFormat != "" {
		c.LogFormat = overlay.LogFormat
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Images.Merge(&overlay.Images)
	c.Sessions.Merge(&overlay.Sessions)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Images.Finalize(imagesEnv); err != nil {
		return fmt.Errorf("images: %w", err)
	}
	if err := c.Sessions.Finalize(sessionsEnv); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvFloorplanShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvFloorplanVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvFloorplanLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvFloorplanLogFormat); v != "" {
		c.LogFormat = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	if _, err := c.LogHandler(io.Discard); err != nil {
		return err
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(dir string) string {
	if env := os.Getenv(EnvFloorplanEnv); env != "" {
		path := filepath.Join(dir, fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
