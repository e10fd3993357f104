// Package pagination provides page-request normalization and paged
// result types for the listing endpoints.
package pagination

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names for pagination overrides.
const (
	EnvPaginationDefaultPageSize = "PAGINATION_DEFAULT_PAGE_SIZE"
	EnvPaginationMaxPageSize     = "PAGINATION_MAX_PAGE_SIZE"
)

const (
	fallbackDefaultPageSize = 20
	fallbackMaxPageSize     = 100
)

// Config bounds the page sizes a client can request. Requests outside
// these bounds are clamped during normalization, never rejected.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// Finalize applies defaults, loads environment overrides, and validates
// the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}

func (c *Config) loadDefaults() {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = fallbackDefaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = fallbackMaxPageSize
	}
}

func (c *Config) loadEnv() {
	if n := intFromEnv(EnvPaginationDefaultPageSize); n > 0 {
		c.DefaultPageSize = n
	}
	if n := intFromEnv(EnvPaginationMaxPageSize); n > 0 {
		c.MaxPageSize = n
	}
}

func (c *Config) validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be positive")
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default_page_size cannot exceed max_page_size")
	}
	return nil
}

func intFromEnv(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
