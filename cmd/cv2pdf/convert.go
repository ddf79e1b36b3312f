package main

import (
	"context"
	"fmt"
	"log/slog"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
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

	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(positional)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no CV files found in %v", ErrNoInput, positional)
	}

	params, err := buildConversionParams(cfg, flags.render.lang, flags.outputMode)
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := min(cv2pdf.ResolvePoolSize(workers), len(files))
	logger.Info("starting conversion", slog.Int("files", len(files)), slog.Int("workers", poolSize))

	pool, err := env.NewPool(poolSize, converterOptions(cfg, timeout)...)
	if err != nil {
		return err
	}
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing browsers", slog.String("error", err.Error()))
		}
	}()

	out := outputTarget{
		flag:        flags.output,
		defaultPath: cfg.Output.DefaultPath,
		batch:       len(files) > 1,
	}
	results := convertBatch(ctx, pool, files, out, params, logger)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed == 0 {
		return nil
	}
	if len(results) == 1 {
		return errReported{firstError(results)}
	}
	return errReported{fmt.Errorf("%d conversion(s) failed: %w", failed, firstError(results))}
}
