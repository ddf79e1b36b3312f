package cv2pdf

import (
	"errors"

	"github.com/alnah/go-cv2pdf/internal/cv"
)

// Sentinel errors for library operations.
var (
	// ErrConfigInvalid means the CV document could not be accepted. Nothing is rendered.
	ErrConfigInvalid = cv.ErrConfigInvalid
	// ErrNameRequired means the CV has no usable personal.name. It wraps ErrConfigInvalid.
	ErrNameRequired = cv.ErrNameRequired

	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Watermark validation errors.
	ErrInvalidWatermarkColor   = errors.New("invalid watermark color")
	ErrInvalidWatermarkOpacity = errors.New("invalid watermark opacity")
	ErrInvalidWatermarkAngle   = errors.New("invalid watermark angle")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// IsBackendError reports whether err came from the PDF backend rather than
// from the input.
func IsBackendError(err error) bool {
	return errors.Is(err, ErrBrowserConnect) ||
		errors.Is(err, ErrPageCreate) ||
		errors.Is(err, ErrPageLoad) ||
		errors.Is(err, ErrPDFGeneration)
}
