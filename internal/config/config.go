// Package config loads the cv2pdf application config: defaults for the CLI
// and the HTTP server that the CV document itself does not carry.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldInvalid    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxPathLength           = 4096
	MaxLocaleLength         = 5  // "EN", "PT"
	MaxStyleLength          = 1024
	MaxPageSizeLength       = 10 // "letter", "a4", "legal"
	MaxOrientationLength    = 10 // "portrait", "landscape"
	MaxWatermarkColorLength = 7  // "#888888"
	MaxAddrLength           = 255
)

// Server defaults.
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 1 << 20
	DefaultServerTimeout = 60 * time.Second
)

// Config holds application-level defaults.
type Config struct {
	Locale    string          `yaml:"locale"` // "EN" or "PT" when the CV has no language
	Output    OutputConfig    `yaml:"output"`
	CSS       CSSConfig       `yaml:"css"`
	Assets    AssetsConfig    `yaml:"assets"`
	Page      PageConfig      `yaml:"page"`
	Watermark WatermarkConfig `yaml:"watermark"`
	Server    ServerConfig    `yaml:"server"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultPath string `yaml:"defaultPath"` // Used when neither flag nor CV sets one
}

// CSSConfig defines styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Style name, CSS file path, or empty for default
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Custom styles directory (empty = embedded)
	Logo     string `yaml:"logo"`     // Logo image used when the CV has none
	ImageDir string `yaml:"imageDir"` // serve: directory request photos and logos are read from
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "a4", "letter", "legal" (default: "a4")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // millimetres (default: 10)
}

// WatermarkConfig styles the draft overlay. Enabled turns draft mode on by default.
type WatermarkConfig struct {
	Enabled bool    `yaml:"enabled"`
	Color   string  `yaml:"color"`   // Hex color (default: "#888888")
	Opacity float64 `yaml:"opacity"` // 0.0 to 1.0 (default: 0.15)
	Angle   float64 `yaml:"angle"`   // Rotation in degrees (default: 0)
}

// ServerConfig defines options for "cv2pdf serve".
type ServerConfig struct {
	Addr         string        `yaml:"addr"`         // Listen address (default: ":8080")
	MaxBodyBytes int64         `yaml:"maxBodyBytes"` // Request body limit (default: 1MB)
	Workers      int           `yaml:"workers"`      // Browser pool size (0 = auto)
	Timeout      time.Duration `yaml:"timeout"`      // Per-request render timeout (default: 60s)
}

// Validate checks field lengths and ranges.
// Called by LoadConfig; also useful for configs built in code.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"locale", c.Locale, MaxLocaleLength},
		{"output.defaultPath", c.Output.DefaultPath, MaxPathLength},
		{"css.style", c.CSS.Style, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.logo", c.Assets.Logo, MaxPathLength},
		{"assets.imageDir", c.Assets.ImageDir, MaxPathLength},
		{"page.size", c.Page.Size, MaxPageSizeLength},
		{"page.orientation", c.Page.Orientation, MaxOrientationLength},
		{"watermark.color", c.Watermark.Color, MaxWatermarkColorLength},
		{"server.addr", c.Server.Addr, MaxAddrLength},
	}
	for _, ch := range checks {
		if err := validateFieldLength(ch.name, ch.value, ch.max); err != nil {
			return err
		}
	}

	if c.Watermark.Opacity < 0 || c.Watermark.Opacity > 1 {
		return fmt.Errorf("%w: watermark.opacity must be between 0 and 1, got %.2f", ErrFieldInvalid, c.Watermark.Opacity)
	}
	if c.Watermark.Angle < -90 || c.Watermark.Angle > 90 {
		return fmt.Errorf("%w: watermark.angle must be between -90 and 90, got %.2f", ErrFieldInvalid, c.Watermark.Angle)
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("%w: page.margin must not be negative, got %.2f", ErrFieldInvalid, c.Page.Margin)
	}
	if c.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: server.maxBodyBytes must not be negative", ErrFieldInvalid)
	}
	if c.Server.Workers < 0 {
		return fmt.Errorf("%w: server.workers must not be negative", ErrFieldInvalid)
	}
	if c.Server.Timeout < 0 {
		return fmt.Errorf("%w: server.timeout must not be negative", ErrFieldInvalid)
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with server defaults and nothing else set.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         DefaultAddr,
			MaxBodyBytes: DefaultMaxBodyBytes,
			Timeout:      DefaultServerTimeout,
		},
	}
}

// ApplyDefaults fills zero server fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = DefaultServerTimeout
	}
}

// ResolveRelative makes relative paths in c relative to dir (the config
// file's directory) instead of the working directory.
func (c *Config) ResolveRelative(dir string) {
	c.Assets.BasePath = fileutil.ResolvePath(dir, c.Assets.BasePath)
	c.Assets.Logo = fileutil.ResolvePath(dir, c.Assets.Logo)
	c.Assets.ImageDir = fileutil.ResolvePath(dir, c.Assets.ImageDir)
	if fileutil.IsFilePath(c.CSS.Style) && !fileutil.IsCSS(c.CSS.Style) {
		c.CSS.Style = fileutil.ResolvePath(dir, c.CSS.Style)
	}
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; otherwise it is a
// name searched in standard locations. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
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

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.ResolveRelative(filepath.Dir(configPath))
	return cfg, nil
}

// resolveConfigPath searches for name.yaml then name.yml, first in the
// working directory, then in the user config directory (go-cv2pdf/).
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

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-cv2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
