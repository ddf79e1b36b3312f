package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // CV2PDF_CONFIG: config file name or path
	Style      string        // CV2PDF_STYLE: CSS style name or path
	Timeout    time.Duration // CV2PDF_TIMEOUT: PDF generation timeout
	Lang       string        // CV2PDF_LANG: EN or PT
	Logo       string        // CV2PDF_LOGO: default logo path
	PageSize   string        // CV2PDF_PAGE_SIZE: a4, letter, legal
	Output     string        // CV2PDF_OUTPUT: default output PDF path
	Workers    int           // CV2PDF_WORKERS: parallel workers
	Addr       string        // CV2PDF_ADDR: serve listen address
}

// knownEnvVars lists valid CV2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CV2PDF_CONFIG":    true,
	"CV2PDF_STYLE":     true,
	"CV2PDF_TIMEOUT":   true,
	"CV2PDF_LANG":      true,
	"CV2PDF_LOGO":      true,
	"CV2PDF_PAGE_SIZE": true,
	"CV2PDF_OUTPUT":    true,
	"CV2PDF_WORKERS":   true,
	"CV2PDF_ADDR":      true,
	"CV2PDF_CONTAINER": true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CV2PDF_CONFIG"),
		Style:      os.Getenv("CV2PDF_STYLE"),
		Lang:       os.Getenv("CV2PDF_LANG"),
		Logo:       os.Getenv("CV2PDF_LOGO"),
		PageSize:   os.Getenv("CV2PDF_PAGE_SIZE"),
		Output:     os.Getenv("CV2PDF_OUTPUT"),
		Addr:       os.Getenv("CV2PDF_ADDR"),
	}

	if timeout := os.Getenv("CV2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("CV2PDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized CV2PDF_* variable.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "CV2PDF_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", slog.String("name", name))
		}
	}
}

// applyEnvConfig applies environment values to cfg where cfg is still empty.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}
	if env.Lang != "" && cfg.Locale == "" {
		cfg.Locale = env.Lang
	}
	if env.Logo != "" && cfg.Assets.Logo == "" {
		cfg.Assets.Logo = env.Logo
	}
	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
	if env.Output != "" && cfg.Output.DefaultPath == "" {
		cfg.Output.DefaultPath = env.Output
	}
	if env.Workers > 0 && cfg.Server.Workers == 0 {
		cfg.Server.Workers = env.Workers
	}
	if env.Addr != "" && (cfg.Server.Addr == "" || cfg.Server.Addr == config.DefaultAddr) {
		cfg.Server.Addr = env.Addr
	}
}

// loadAppConfig loads the config named by flag or CV2PDF_CONFIG, then layers
// environment values on top. Without either, defaults are returned.
func loadAppConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}
