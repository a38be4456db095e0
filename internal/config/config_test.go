package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCaptureConfigDefaults(t *testing.T) {
	cfg, err := LoadCaptureConfig("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Addr != "127.0.0.1:13854" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.ChunkBytes != 256 {
		t.Fatalf("unexpected chunk_bytes: %d", cfg.ChunkBytes)
	}
	if cfg.CaptureSeconds != 60 {
		t.Fatalf("unexpected capture_seconds: %d", cfg.CaptureSeconds)
	}
	if len(cfg.Labels) == 0 {
		t.Fatalf("expected default labels")
	}
}

func TestLoadCaptureConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.toml")
	content := `
addr = "127.0.0.1:14000"
capture_seconds = 10
leadin_seconds = 1
output_dir = "sessions"
labels = ["calm", "focus"]
status_addr = "127.0.0.1:9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadCaptureConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != "127.0.0.1:14000" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.CaptureSeconds != 10 {
		t.Fatalf("unexpected capture_seconds: %d", cfg.CaptureSeconds)
	}
	// Unset keys keep their defaults.
	if cfg.ChunkBytes != 256 {
		t.Fatalf("unexpected chunk_bytes: %d", cfg.ChunkBytes)
	}
	if len(cfg.Labels) != 2 || cfg.Labels[0] != "calm" {
		t.Fatalf("unexpected labels: %v", cfg.Labels)
	}
	if cfg.StatusAddr != "127.0.0.1:9090" {
		t.Fatalf("unexpected status_addr: %q", cfg.StatusAddr)
	}
}

func TestLoadCaptureConfigMissingFile(t *testing.T) {
	if _, err := LoadCaptureConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected load error for missing file")
	}
}

func TestValidateCaptureConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CaptureConfig)
	}{
		{"blank addr", func(c *CaptureConfig) { c.Addr = " " }},
		{"addr without port", func(c *CaptureConfig) { c.Addr = "localhost" }},
		{"zero chunk", func(c *CaptureConfig) { c.ChunkBytes = 0 }},
		{"zero duration", func(c *CaptureConfig) { c.CaptureSeconds = 0 }},
		{"negative leadin", func(c *CaptureConfig) { c.LeadinSeconds = -1 }},
		{"blank output dir", func(c *CaptureConfig) { c.OutputDir = "" }},
		{"no labels", func(c *CaptureConfig) { c.Labels = nil }},
		{"blank label", func(c *CaptureConfig) { c.Labels = []string{"calm", " "} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCaptureConfig()
			tc.mutate(&cfg)
			if err := ValidateCaptureConfig(cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultCaptureConfig()
	if cfg.CaptureDuration().Seconds() != 60 {
		t.Fatalf("unexpected capture duration: %v", cfg.CaptureDuration())
	}
	if cfg.ConnectTimeout().Seconds() != 5 {
		t.Fatalf("unexpected connect timeout: %v", cfg.ConnectTimeout())
	}
}
