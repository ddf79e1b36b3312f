package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/hints"
	"github.com/alnah/go-cv2pdf/internal/server"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput   = errors.New("no input specified")
	ErrReadCV    = errors.New("failed to read CV file")
	ErrWritePDF  = errors.New("failed to write PDF file")
	ErrWriteHTML = errors.New("failed to write HTML file")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently, one converter per worker.
// Results keep the order of files. Inputs that would overwrite an earlier
// input's output are failed without being converted.
func convertBatch(ctx context.Context, pool Pool, files []string, out outputTarget, params *conversionParams, logger *slog.Logger) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	conflicts := claimOutputs(files, out)
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire(ctx)
			if err != nil {
				for idx := range jobs {
					results[idx] = ConversionResult{InputPath: files[idx], Err: err}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{InputPath: files[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], out, params, logger)
			}
		}()
	}

	for i := range files {
		if conflicts[i] != nil {
			results[i] = ConversionResult{InputPath: files[i], Err: conflicts[i]}
			continue
		}
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile reads, renders and writes one CV.
func convertFile(ctx context.Context, conv server.Converter, inputPath string, out outputTarget, params *conversionParams, logger *slog.Logger) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: inputPath}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadCV, err))
	}

	cv, err := cv2pdf.ParseCV(data)
	if err != nil {
		return fail(err)
	}

	if strings.TrimSpace(cv.LogoPath) == "" {
		cv.LogoPath = params.logo
	}

	assetDir := filepath.Dir(inputPath)
	logMissingImages(logger, cv, assetDir)

	locale := params.lang
	if locale == "" && strings.TrimSpace(cv.Language) == "" {
		locale = params.fallback
	}

	result.OutputPath = out.resolve(inputPath, cv.OutputPdf)
	if err := os.MkdirAll(filepath.Dir(result.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}

	convResult, err := conv.Convert(ctx, cv2pdf.Input{
		CV:        cv,
		Locale:    locale,
		AssetDir:  assetDir,
		Draft:     params.draft,
		Watermark: params.watermark,
		Page:      params.page,
		HTMLOnly:  params.htmlOnly,
	})
	if err != nil {
		return fail(err)
	}

	if params.htmlOnly || params.htmlOutput {
		htmlPath := htmlOutputPath(result.OutputPath)
		// #nosec G306 -- HTML files are meant to be readable
		if err := os.WriteFile(htmlPath, convResult.HTML, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
		}
		if params.htmlOnly {
			result.OutputPath = htmlPath
			result.Duration = time.Since(start)
			return result
		}
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(result.OutputPath, convResult.PDF, filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWritePDF, err))
	}

	result.Duration = time.Since(start)
	return result
}

// logMissingImages reports photo and logo paths that will not be embedded.
// Rendering still succeeds without them.
func logMissingImages(logger *slog.Logger, cv *cv2pdf.CV, assetDir string) {
	images := []struct{ kind, path string }{
		{"photo", cv.Personal.PhotoPath},
		{"logo", cv.LogoPath},
	}
	for _, img := range images {
		if strings.TrimSpace(img.path) == "" {
			continue
		}
		resolved := fileutil.ResolvePath(assetDir, img.path)
		if !fileutil.FileExists(resolved) {
			logger.Debug("image not embedded",
				slog.String("kind", img.kind),
				slog.String("path", resolved),
				slog.String("hint", strings.TrimPrefix(hints.ForImage(img.path), "\n  hint: ")),
			)
		}
	}
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes one line per result and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// firstError returns the first failure, so the exit code reflects its kind.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
