package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// EnvRenderDPI overrides the thumbnail rendering resolution.
	EnvRenderDPI = "RENDER_DPI"

	// EnvRenderFormat overrides the thumbnail image format.
	EnvRenderFormat = "RENDER_FORMAT"
)

// RenderConfig contains page rasterization configuration.
type RenderConfig struct {
	// DPI is the resolution thumbnails are rendered at.
	DPI int `toml:"dpi"`

	// Format is the thumbnail image format, "png" or "jpg".
	Format string `toml:"format"`
}

// Finalize applies defaults, loads environment overrides, and validates the render configuration.
func (c *RenderConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *RenderConfig) Merge(overlay *RenderConfig) {
	if overlay.DPI != 0 {
		c.DPI = overlay.DPI
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func (c *RenderConfig) loadDefaults() {
	if c.DPI == 0 {
		c.DPI = 150
	}
	if c.Format == "" {
		c.Format = "png"
	}
}

func (c *RenderConfig) loadEnv() {
	if v := os.Getenv(EnvRenderDPI); v != "" {
		if dpi, err := strconv.Atoi(v); err == nil {
			c.DPI = dpi
		}
	}
	if v := os.Getenv(EnvRenderFormat); v != "" {
		c.Format = v
	}
}

func (c *RenderConfig) validate() error {
	if c.DPI < 72 || c.DPI > 1200 {
		return fmt.Errorf("dpi must be between 72 and 1200")
	}
	if c.Format != "png" && c.Format != "jpg" {
		return fmt.Errorf("format must be 'png' or 'jpg'")
	}
	return nil
}
