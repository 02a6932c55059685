// Package config loads the YAML configuration shared by md2slides and
// slides2pdf. Command-line flags always take precedence over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2slides/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength = 200
	MaxModeLength  = 20
	MaxPathLength  = 4096
	MaxStyleLength = 50
)

// Viewport bounds in CSS pixels.
const (
	MinViewport = 320
	MaxViewport = 7680
)

// AppDirName is the directory searched under the user config dir.
const AppDirName = "go-md2slides"

// Config holds defaults for both tools.
type Config struct {
	Deck     DeckConfig     `yaml:"deck"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Assets   AssetsConfig   `yaml:"assets"`
	Export   ExportConfig   `yaml:"export"`
}

// DeckConfig holds md2slides defaults.
type DeckConfig struct {
	Mode      string `yaml:"mode"`      // "simple" or "complex"
	Title     string `yaml:"title"`     // document <title>
	OutputDir string `yaml:"outputDir"` // where index.html and styles.css go
}

// MarkdownConfig tunes slide conversion.
type MarkdownConfig struct {
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name (default: monokai)
	AbsolutePaths  bool   `yaml:"absolutePaths"`  // rewrite relative img/link paths
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ExportConfig holds slides2pdf defaults.
type ExportConfig struct {
	Input       string         `yaml:"input"`       // presentation HTML (default: index.html)
	Output      string         `yaml:"output"`      // merged PDF (default: presentation.pdf)
	Timeout     string         `yaml:"timeout"`     // Go duration, e.g. "30s"
	SettleDelay string         `yaml:"settleDelay"` // Go duration, e.g. "200ms"
	Viewport    ViewportConfig `yaml:"viewport"`
}

// ViewportConfig sets the browser viewport. Zero means the default.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"deck.mode", c.Deck.Mode, MaxModeLength},
		{"deck.title", c.Deck.Title, MaxTitleLength},
		{"deck.outputDir", c.Deck.OutputDir, MaxPathLength},
		{"markdown.highlightStyle", c.Markdown.HighlightStyle, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"export.input", c.Export.Input, MaxPathLength},
		{"export.output", c.Export.Output, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if _, err := c.Export.TimeoutDuration(); err != nil {
		return err
	}
	d, err := c.Export.SettleDelayDuration()
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("%w: export.settleDelay must not be negative", ErrInvalidValue)
	}

	if err := validateViewport("export.viewport.width", c.Export.Viewport.Width); err != nil {
		return err
	}
	return validateViewport("export.viewport.height", c.Export.Viewport.Height)
}

// TimeoutDuration parses Export.Timeout. Empty returns 0.
func (e ExportConfig) TimeoutDuration() (time.Duration, error) {
	d, err := parseDuration("export.timeout", e.Timeout)
	if err != nil {
		return 0, err
	}
	if e.Timeout != "" && d <= 0 {
		return 0, fmt.Errorf("%w: export.timeout must be positive", ErrInvalidValue)
	}
	return d, nil
}

// SettleDelayDuration parses Export.SettleDelay. Empty returns 0; use
// HasSettleDelay to tell unset from "0s".
func (e ExportConfig) SettleDelayDuration() (time.Duration, error) {
	return parseDuration("export.settleDelay", e.SettleDelay)
}

// HasSettleDelay reports whether a settle delay was configured. An explicit
// "0s" disables the delay, which differs from leaving it unset.
func (e ExportConfig) HasSettleDelay() bool {
	return e.SettleDelay != ""
}

func parseDuration(field, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidValue, field, err)
	}
	return d, nil
}

func validateViewport(field string, v int) error {
	if v == 0 {
		return nil
	}
	if v < MinViewport || v > MaxViewport {
		return fmt.Errorf("%w: %s = %d (must be %d-%d)", ErrInvalidValue, field, v, MinViewport, MaxViewport)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration; every tool default applies.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2slides/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
