package render

import (
	"strings"
	"sync"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/cv"
	"github.com/alnah/go-cv2pdf/internal/locale"
)

var defaultCSS = sync.OnceValue(assets.MustDefaultStyle)

// Options controls one render.
type Options struct {
	// Locale overrides cfg.Language when set ("EN" or "PT").
	Locale string

	// AssetDir resolves relative photo and logo paths. Empty means the
	// working directory.
	AssetDir string

	// LogoPath is the logo image. An empty or unreadable path draws the
	// built-in mark.
	LogoPath string

	// Draft adds the localized watermark overlay.
	Draft     bool
	Watermark Watermark

	// CSS replaces the built-in stylesheet when non-empty.
	CSS string
}

// Dictionary returns the labels for a render: opts.Locale if set, else cfg.Language.
func Dictionary(cfg *cv.CvConfig, opts Options) locale.Dictionary {
	if strings.TrimSpace(opts.Locale) != "" {
		return locale.For(opts.Locale)
	}
	return locale.For(cfg.Language)
}

// Document renders cfg as a complete HTML document. cfg must have passed
// cv.Validate; it is not checked again and is never modified.
func Document(cfg *cv.CvConfig, opts Options) string {
	dict := Dictionary(cfg, opts)

	css := opts.CSS
	if css == "" {
		css = defaultCSS()
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html lang="`)
	b.WriteString(strings.ToLower(dict.Code))
	b.WriteString(`"><head><meta charset="utf-8"><title>`)
	b.WriteString(Escape(strings.TrimSpace(cfg.Personal.Name)))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(css)
	if opts.Draft {
		b.WriteString(buildWatermarkCSS(opts.Watermark))
	}
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString(header(cfg, dict, opts))
	if opts.Draft {
		b.WriteString(watermarkOverlay(dict.Draft))
	}
	b.WriteString("<main class=\"cv-sections\">\n")
	for _, s := range Sections(cfg.Sections, dict) {
		b.WriteString(s)
	}
	b.WriteString("</main>\n</body></html>\n")
	return b.String()
}
