package config_test

import (
	"testing"

	"github.com/Most2022/smartpdf/internal/config"
)

func TestStorageConfig_Finalize(t *testing.T) {
	var cfg config.StorageConfig

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if cfg.BasePath != ".data/blobs" {
		t.Errorf("BasePath = %q, want default", cfg.BasePath)
	}
	if cfg.MaxUploadSizeBytes() != 100*1000*1000 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 100MB", cfg.MaxUploadSizeBytes())
	}
}

func TestStorageConfig_InvalidSize(t *testing.T) {
	cfg := config.StorageConfig{MaxUploadSize: "lots"}

	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() = nil, want error for unparseable size")
	}
}

func TestRenderConfig_Finalize(t *testing.T) {
	var cfg config.RenderConfig

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if cfg.DPI != 150 || cfg.Format != "png" {
		t.Errorf("Finalize() = dpi %d format %q, want 150 png", cfg.DPI, cfg.Format)
	}
}

func TestRenderConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RenderConfig
	}{
		{"dpi too low", config.RenderConfig{DPI: 50, Format: "png"}},
		{"dpi too high", config.RenderConfig{DPI: 2400, Format: "png"}},
		{"unknown format", config.RenderConfig{DPI: 150, Format: "webp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() = nil, want validation error")
			}
		})
	}
}

func TestServerConfig_Addr(t *testing.T) {
	var cfg config.ServerConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	if cfg.Addr() != "localhost:8080" {
		t.Errorf("Addr() = %q, want localhost:8080", cfg.Addr())
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := config.ServerConfig{Host: "localhost", Port: 8080, ReadTimeout: "30s"}
	base.Merge(&config.ServerConfig{Port: 9090, ReadTimeout: "10s"})

	if base.Host != "localhost" || base.Port != 9090 || base.ReadTimeout != "10s" {
		t.Errorf("Merge() = %+v, want overlay port and timeout applied", base)
	}
}
