package main

import (
	"errors"
	"os"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// Exit codes for the cv2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or CV
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if cv2pdf.IsBackendError(err) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadCV) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	if errors.Is(err, cv2pdf.ErrConfigInvalid) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrFieldInvalid) ||
		errors.Is(err, cv2pdf.ErrInvalidPageSize) ||
		errors.Is(err, cv2pdf.ErrInvalidOrientation) ||
		errors.Is(err, cv2pdf.ErrInvalidMargin) ||
		errors.Is(err, cv2pdf.ErrInvalidWatermarkColor) ||
		errors.Is(err, cv2pdf.ErrInvalidWatermarkOpacity) ||
		errors.Is(err, cv2pdf.ErrInvalidWatermarkAngle) ||
		errors.Is(err, cv2pdf.ErrStyleNotFound) ||
		errors.Is(err, cv2pdf.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
