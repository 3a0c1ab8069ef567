package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"FOLIO_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("FOLIO_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDefaultsWithoutDotenv(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 1280 || cfg.Height != 800 {
		t.Fatalf("window = %dx%d, want 1280x800", cfg.Width, cfg.Height)
	}
	if cfg.Touch != "auto" {
		t.Fatalf("touch = %q, want auto", cfg.Touch)
	}
	if cfg.ScreenshotDir != "screenshots" {
		t.Fatalf("screenshot dir = %q", cfg.ScreenshotDir)
	}
}

func TestLoadReadsDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("FOLIO_WIDTH=640\nFOLIO_TOUCH=on\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set, so make
	// sure these are unset and cleaned up afterwards.
	t.Setenv("FOLIO_WIDTH", "")
	t.Setenv("FOLIO_TOUCH", "")
	os.Unsetenv("FOLIO_WIDTH")
	os.Unsetenv("FOLIO_TOUCH")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 640 {
		t.Fatalf("width = %d, want 640", cfg.Width)
	}
	if cfg.Touch != "on" {
		t.Fatalf("touch = %q, want on", cfg.Touch)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Width: 10, Height: 10, Touch: "auto", QRSize: 64}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"zero width", func(c *Config) { c.Width = 0 }, "window size"},
		{"bad touch", func(c *Config) { c.Touch = "maybe" }, "FOLIO_TOUCH"},
		{"tiny qr", func(c *Config) { c.QRSize = 8 }, "FOLIO_QR_SIZE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
