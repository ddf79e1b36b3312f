package main

import (
	"context"
	"fmt"
	"log/slog"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/server"
)

// runServe starts the HTTP render host and blocks until ctx is cancelled.
func runServe(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseServeFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(logger)

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadAppConfig(flags.common.config, envCfg)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	mergeSharedFlags(flags.render, flags.page, flags.watermark, flags.assets, cfg)
	mergeServeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg)
	if err != nil {
		return err
	}
	if timeout > 0 {
		cfg.Server.Timeout = timeout
	}

	srvCfg, err := buildServerConfig(cfg, flags.render.lang)
	if err != nil {
		return err
	}

	poolSize := cv2pdf.ResolvePoolSize(cfg.Server.Workers)
	pool, err := env.NewPool(poolSize, converterOptions(cfg, 0)...)
	if err != nil {
		return err
	}
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing browsers", slog.String("error", err.Error()))
		}
	}()

	// Request logs are informational, so serve logs at info unless --quiet.
	srvLogger := logger
	if !flags.common.quiet && !flags.common.verbose {
		srvLogger = slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	srvLogger.Info("starting server", slog.String("addr", srvCfg.Addr), slog.Int("workers", poolSize))

	return server.New(srvCfg, pool, srvLogger).Run(ctx)
}

// mergeServeFlags merges serve-only flags into cfg.
func mergeServeFlags(flags *serveFlags, cfg *config.Config) {
	if flags.addr != "" {
		cfg.Server.Addr = flags.addr
	}
	if flags.workers > 0 {
		cfg.Server.Workers = flags.workers
	}
	if flags.maxBodyBytes > 0 {
		cfg.Server.MaxBodyBytes = flags.maxBodyBytes
	}
	if flags.imageDir != "" {
		cfg.Assets.ImageDir = flags.imageDir
	}
}

// buildServerConfig translates the app config into server settings.
// --lang sets the label language for CVs that do not name one.
func buildServerConfig(cfg *config.Config, lang string) (server.Config, error) {
	page, err := buildPageSettings(cfg)
	if err != nil {
		return server.Config{}, err
	}
	wm, err := buildWatermark(cfg)
	if err != nil {
		return server.Config{}, err
	}

	locale := cfg.Locale
	if lang != "" {
		locale = lang
	}

	timeout := cfg.Server.Timeout
	if timeout <= 0 {
		timeout = config.DefaultServerTimeout
	}

	return server.Config{
		Addr:         cfg.Server.Addr,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Timeout:      timeout,
		Locale:       locale,
		Logo:         cfg.Assets.Logo,
		Draft:        cfg.Watermark.Enabled,
		ImageDir:     cfg.Assets.ImageDir,
		Page:         page,
		Watermark:    wm,
	}, nil
}
