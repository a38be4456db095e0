package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// CaptureConfig holds capture.toml settings for one subject run.
type CaptureConfig struct {
	Addr                  string   `toml:"addr"`
	ConnectTimeoutSeconds int      `toml:"connect_timeout_seconds"`
	ChunkBytes            int      `toml:"chunk_bytes"`
	CaptureSeconds        int      `toml:"capture_seconds"`
	LeadinSeconds         int      `toml:"leadin_seconds"`
	OutputDir             string   `toml:"output_dir"`
	Labels                []string `toml:"labels"`
	StatusAddr            string   `toml:"status_addr"`
}

// DefaultCaptureConfig returns the bridge and session defaults: the
// well-known local connector port, 256-byte receive chunks, a one-minute
// window per label.
func DefaultCaptureConfig() CaptureConfig {
	return CaptureConfig{
		Addr:                  "127.0.0.1:13854",
		ConnectTimeoutSeconds: 5,
		ChunkBytes:            256,
		CaptureSeconds:        60,
		LeadinSeconds:         5,
		OutputDir:             ".",
		Labels:                []string{"anger", "boredom", "delight", "fear", "sadness", "surprise"},
	}
}

// LoadCaptureConfig overlays capture.toml values on the defaults. An
// empty path returns the validated defaults unchanged.
func LoadCaptureConfig(path string) (CaptureConfig, error) {
	cfg := DefaultCaptureConfig()
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return CaptureConfig{}, err
		}
	}
	if err := ValidateCaptureConfig(cfg); err != nil {
		return CaptureConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateCaptureConfig(cfg CaptureConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("capture config missing addr")
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("capture config addr invalid: %w", err)
	}
	if cfg.ConnectTimeoutSeconds <= 0 {
		return fmt.Errorf("capture config connect_timeout_seconds must be positive")
	}
	if cfg.ChunkBytes <= 0 {
		return fmt.Errorf("capture config chunk_bytes must be positive")
	}
	if cfg.CaptureSeconds <= 0 {
		return fmt.Errorf("capture config capture_seconds must be positive")
	}
	if cfg.LeadinSeconds < 0 {
		return fmt.Errorf("capture config leadin_seconds must not be negative")
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return fmt.Errorf("capture config missing output_dir")
	}
	if len(cfg.Labels) == 0 {
		return fmt.Errorf("capture config requires at least one label")
	}
	for i, label := range cfg.Labels {
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("label[%d] is blank", i)
		}
	}
	return nil
}

func (c CaptureConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

func (c CaptureConfig) CaptureDuration() time.Duration {
	return time.Duration(c.CaptureSeconds) * time.Second
}

func (c CaptureConfig) Leadin() time.Duration {
	return time.Duration(c.LeadinSeconds) * time.Second
}
