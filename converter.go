package cv2pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/render"
)

// Converter renders CVs to HTML and PDF.
// Create with NewConverter(), use Convert() for conversion, and Close() when done.
// A Converter owns one browser; use ConverterPool for parallel work.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	pdfConverter      pdfConverter
}

// publicToInternalAdapter wraps a public AssetLoader as an internal one.
type publicToInternalAdapter struct {
	pub AssetLoader
}

func (a *publicToInternalAdapter) LoadStyle(name string) (string, error) {
	return a.pub.LoadStyle(name)
}

func (a *publicToInternalAdapter) ListStyles() ([]string, error) {
	return a.pub.ListStyles()
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle, WithAssetPath).
// Returns error if the asset path is invalid or the style cannot be loaded.
// The browser is not started until the first PDF conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:         converterConfig{timeout: defaultTimeout},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	if c.publicAssetLoader != nil {
		c.assetLoader = &publicToInternalAdapter{pub: c.publicAssetLoader}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// Convert renders input.CV to HTML and, unless input.HTMLOnly is set, to PDF.
// The context is used for cancellation and timeout of the PDF step.
// Recovers from internal panics so a bad request cannot crash a host process.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	logo := input.LogoPath
	if logo == "" {
		logo = input.CV.LogoPath
	}

	css := c.cfg.resolvedStyle
	if input.CSS != "" {
		if css == "" {
			css = assets.MustDefaultStyle()
		}
		css += "\n" + input.CSS
	}

	htmlContent := render.Document(input.CV, render.Options{
		Locale:    input.Locale,
		AssetDir:  input.AssetDir,
		LogoPath:  logo,
		Draft:     input.Draft,
		Watermark: input.Watermark.toRender(),
		CSS:       css,
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &ConvertResult{
		HTML: []byte(htmlContent),
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle turns the style input (name, path, or CSS content) into CSS.
// An empty input leaves resolvedStyle empty, which renders with the default.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		if c.cfg.assetPath == "" && c.publicAssetLoader == nil {
			return nil
		}
		// A custom directory may override the default style.
		input = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %v", ErrStyleNotFound, input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput is the trust boundary for library users who build Input
// by hand. CLI and HTTP inputs pass through ParseCV first.
func (c *Converter) validateInput(input Input) error {
	if input.CV == nil || strings.TrimSpace(input.CV.Personal.Name) == "" {
		return ErrNameRequired
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Watermark.Validate(); err != nil {
		return err
	}
	return nil
}
