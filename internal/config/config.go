// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds the window, content and tooling settings.
type Config struct {
	Title  string `env:"FOLIO_TITLE" envDefault:"Tarun Varier | Maker & Developer"`
	Width  int    `env:"FOLIO_WIDTH" envDefault:"1280"`
	Height int    `env:"FOLIO_HEIGHT" envDefault:"800"`

	Debug   bool `env:"FOLIO_DEBUG"`
	ShowFPS bool `env:"FOLIO_SHOW_FPS"`

	// Touch forces touch mode: "auto", "on" or "off".
	Touch string `env:"FOLIO_TOUCH" envDefault:"auto"`

	// ContentFile and PresetsFile replace the embedded defaults.
	ContentFile string `env:"FOLIO_CONTENT"`
	PresetsFile string `env:"FOLIO_PRESETS"`

	// Script runs a scripted input session; ExitAfterScript closes the
	// window when it finishes.
	Script          string `env:"FOLIO_SCRIPT"`
	ExitAfterScript bool   `env:"FOLIO_EXIT_AFTER_SCRIPT"`
	ScreenshotDir   string `env:"FOLIO_SCREENSHOT_DIR" envDefault:"screenshots"`

	// QRSize is the edge length in pixels of contact QR codes.
	QRSize int `env:"FOLIO_QR_SIZE" envDefault:"160"`
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then parses Config from it. Missing .env files are
// not an error; variables already set in the environment win.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	switch c.Touch {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("config: FOLIO_TOUCH must be auto, on or off, got %q", c.Touch)
	}
	if c.QRSize < 32 {
		return fmt.Errorf("config: FOLIO_QR_SIZE %d is below 32", c.QRSize)
	}
	return nil
}
