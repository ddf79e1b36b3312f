package render

import (
	"fmt"
	"regexp"
	"strings"
)

// Watermark defaults.
const (
	DefaultWatermarkColor   = "#888888"
	DefaultWatermarkOpacity = 0.15
	DefaultWatermarkAngle   = 0.0
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether c is a #rgb or #rrggbb color.
func IsHexColor(c string) bool {
	return hexColorPattern.MatchString(c)
}

// Watermark styles the draft overlay. Zero fields take the defaults.
type Watermark struct {
	Color   string
	Opacity float64
	Angle   float64
}

func (w Watermark) resolved() Watermark {
	if !IsHexColor(w.Color) {
		w.Color = DefaultWatermarkColor
	}
	if w.Opacity <= 0 || w.Opacity > 1 {
		w.Opacity = DefaultWatermarkOpacity
	}
	return w
}

// buildWatermarkCSS positions the overlay. It stays in the print layer on
// every page through position:fixed in the stylesheet.
func buildWatermarkCSS(w Watermark) string {
	w = w.resolved()
	return fmt.Sprintf(`
/* Watermark */
.cv-watermark {
  transform: translate(-50%%, -50%%) rotate(%.1fdeg);
  color: %s;
  opacity: %.2f;
  pointer-events: none;
}
`, w.Angle, w.Color, w.Opacity)
}

// watermarkOverlay stacks the word one character per line.
func watermarkOverlay(word string) string {
	chars := make([]string, 0, len(word))
	for _, r := range word {
		if r == ' ' {
			continue
		}
		chars = append(chars, Escape(string(r)))
	}
	return `<div class="cv-watermark" aria-hidden="true">` + strings.Join(chars, "<br>") + "</div>\n"
}
