package cv2pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/render"
)

// CV document types. See ParseCV for loading them from JSON or YAML.
type (
	CV             = cv.CvConfig
	Personal       = cv.Personal
	Sections       = cv.Sections
	TextBlock      = cv.TextBlock
	ExperienceItem = cv.ExperienceItem
	EducationItem  = cv.EducationItem
	LanguageItem   = cv.LanguageItem
)

// ParseCV decodes a JSON or YAML CV. Returns an error wrapping
// ErrConfigInvalid when the document cannot be decoded, and ErrNameRequired
// when it has no name. Parts with the wrong shape are dropped.
func ParseCV(data []byte) (*CV, error) {
	return cv.Parse(data)
}

// ValidateCV reports whether an untyped decoded value has the minimal CV
// shape: a "personal" object with a non-blank "name" string.
func ValidateCV(v any) bool {
	return cv.Validate(v)
}

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in millimetres.
const (
	MinMargin     = 5.0
	MaxMargin     = 50.0
	DefaultMargin = 10.0
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // millimetres, applied to all sides
}

// DefaultPageSettings returns A4 portrait with 10mm margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Comparison is case-insensitive; p is not modified.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.1fmm (must be between %.0f and %.0f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeA4, PageSizeLetter, PageSizeLegal:
		return true
	}
	return false
}

func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Watermark bounds.
const (
	MinWatermarkAngle = -90.0
	MaxWatermarkAngle = 90.0
)

// Watermark styles the draft overlay. The overlay text is always the
// localized draft word; zero fields take the defaults.
type Watermark struct {
	Color   string  // hex, e.g. "#888888"
	Opacity float64 // 0 to 1
	Angle   float64 // degrees, -90 to 90
}

// Validate checks the watermark styling. Returns nil if w is nil.
func (w *Watermark) Validate() error {
	if w == nil {
		return nil
	}
	if w.Color != "" && !render.IsHexColor(w.Color) {
		return fmt.Errorf("%w: %q (must be hex like #rgb or #rrggbb)", ErrInvalidWatermarkColor, w.Color)
	}
	if w.Opacity < 0 || w.Opacity > 1 {
		return fmt.Errorf("%w: %.2f (must be between 0 and 1)", ErrInvalidWatermarkOpacity, w.Opacity)
	}
	if w.Angle < MinWatermarkAngle || w.Angle > MaxWatermarkAngle {
		return fmt.Errorf("%w: %.1f (must be between %.0f and %.0f)", ErrInvalidWatermarkAngle, w.Angle, MinWatermarkAngle, MaxWatermarkAngle)
	}
	return nil
}

func (w *Watermark) toRender() render.Watermark {
	if w == nil {
		return render.Watermark{}
	}
	return render.Watermark{Color: w.Color, Opacity: w.Opacity, Angle: w.Angle}
}

// Input contains conversion parameters.
type Input struct {
	CV        *CV           // CV document (required, personal.name non-blank)
	Locale    string        // "EN" or "PT"; overrides CV.Language when set
	LogoPath  string        // overrides CV.LogoPath when set
	AssetDir  string        // base directory for relative photo and logo paths
	CSS       string        // extra CSS appended after the converter style
	Draft     bool          // add the localized draft watermark
	Watermark *Watermark    // draft overlay styling (optional)
	Page      *PageSettings // page settings (optional, nil = A4 defaults)
	HTMLOnly  bool          // skip PDF generation
}

// ConvertResult holds both the rendered HTML and the PDF.
// PDF is nil when Input.HTMLOnly is set.
type ConvertResult struct {
	HTML []byte
	PDF  []byte
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	styleInput    string // name, file path, or CSS content
	assetPath     string
	resolvedStyle string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cv2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithStyle selects the stylesheet: a style name ("default", "compact"), a
// path to a CSS file (contains / or \), or raw CSS (contains {).
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath adds a custom asset directory. Styles under
// {path}/styles/{name}.css take precedence over the built-in ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader replaces style loading with a custom AssetLoader.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}
