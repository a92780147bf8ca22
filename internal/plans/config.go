package plans

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds session registry settings.
type Config struct {
	MaxSessions int    `toml:"max_sessions"`
	CookieName  string `toml:"cookie_name"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	MaxSessions string
	CookieName  string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.MaxSessions != 0 {
		c.MaxSessions = overlay.MaxSessions
	}
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
}

func (c *Config) loadDefaults() {
	if c.MaxSessions == 0 {
		c.MaxSessions = 256
	}
	if c.CookieName == "" {
		c.CookieName = "floorplan_session"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.MaxSessions != "" {
		if v := os.Getenv(env.MaxSessions); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxSessions = n
			}
		}
	}
	if env.CookieName != "" {
		if v := os.Getenv(env.CookieName); v != "" {
			c.CookieName = v
		}
	}
}

func (c *Config) validate() error {
	if c.MaxSessions < 1 {
		return fmt.Errorf("max_sessions must be positive")
	}
	return nil
}
