package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// ErrInvalidTimeout is returned for an unparsable or non-positive --timeout.
var ErrInvalidTimeout = errors.New("invalid timeout")

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	lang       string // forced label language, or empty
	fallback   string // label language for CVs without one
	logo       string // absolute, or empty
	draft      bool
	page       *cv2pdf.PageSettings
	watermark  *cv2pdf.Watermark
	htmlOutput bool
	htmlOnly   bool
}

// mergeSharedFlags merges flags common to convert and serve into cfg.
// CLI values override config and environment values. --lang is not merged:
// it overrides the CV language, while cfg.Locale only fills in for CVs
// without one.
func mergeSharedFlags(r renderFlags, p pageFlags, w watermarkFlags, a assetFlags, cfg *config.Config) {
	if r.logo != "" {
		cfg.Assets.Logo = r.logo
	}
	if r.draft {
		cfg.Watermark.Enabled = true
	}

	if p.size != "" {
		cfg.Page.Size = p.size
	}
	if p.orientation != "" {
		cfg.Page.Orientation = p.orientation
	}
	if p.margin != 0 {
		cfg.Page.Margin = p.margin
	}

	if w.color != "" {
		cfg.Watermark.Color = w.color
	}
	if w.opacity != 0 {
		cfg.Watermark.Opacity = w.opacity
	}
	if w.angle != watermarkAngleSentinel {
		cfg.Watermark.Angle = w.angle
	}

	if a.style != "" {
		cfg.CSS.Style = a.style
	}
	if a.assetPath != "" {
		cfg.Assets.BasePath = a.assetPath
	}
}

// buildPageSettings returns nil when no page field is configured, leaving
// the library defaults (A4 portrait, 10mm) in place.
func buildPageSettings(cfg *config.Config) (*cv2pdf.PageSettings, error) {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil, nil
	}

	ps := cv2pdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		ps.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != 0 {
		ps.Margin = cfg.Page.Margin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// buildWatermark returns the overlay styling, or nil when nothing is set.
// The overlay itself is only drawn in draft mode.
func buildWatermark(cfg *config.Config) (*cv2pdf.Watermark, error) {
	wm := cfg.Watermark
	if wm.Color == "" && wm.Opacity == 0 && wm.Angle == 0 {
		return nil, nil
	}

	w := &cv2pdf.Watermark{Color: wm.Color, Opacity: wm.Opacity, Angle: wm.Angle}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// resolveTimeout picks the PDF timeout.
// Priority: flag > env > zero (library default).
func resolveTimeout(flagValue string, env *envConfig) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	return env.Timeout, nil
}

// converterOptions translates config into library options.
func converterOptions(cfg *config.Config, timeout time.Duration) []cv2pdf.Option {
	var opts []cv2pdf.Option
	if timeout > 0 {
		opts = append(opts, cv2pdf.WithTimeout(timeout))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, cv2pdf.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.CSS.Style != "" {
		opts = append(opts, cv2pdf.WithStyle(cfg.CSS.Style))
	}
	return opts
}

// buildConversionParams validates cfg and collects per-CV render settings.
func buildConversionParams(cfg *config.Config, lang string, out outputFlags) (*conversionParams, error) {
	page, err := buildPageSettings(cfg)
	if err != nil {
		return nil, err
	}
	wm, err := buildWatermark(cfg)
	if err != nil {
		return nil, err
	}

	logo := cfg.Assets.Logo
	if logo != "" {
		if abs, err := filepath.Abs(logo); err == nil {
			logo = abs
		}
	}

	return &conversionParams{
		lang:       lang,
		fallback:   cfg.Locale,
		logo:       logo,
		draft:      cfg.Watermark.Enabled,
		page:       page,
		watermark:  wm,
		htmlOutput: out.html,
		htmlOnly:   out.htmlOnly,
	}, nil
}
