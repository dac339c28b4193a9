package main

import (
	"errors"
	"os"

	slideshow "github.com/conordavidson/slideshow-generator"
	"github.com/conordavidson/slideshow-generator/internal/config"
	"github.com/conordavidson/slideshow-generator/internal/dateutil"
)

// Exit codes for the slideshow CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Slideshow generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, slideshow file, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitPDF     = 4 // PDF assembly/write errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// PDF write errors (exit 4)
	if errors.Is(err, slideshow.ErrPDFWrite) {
		return ExitPDF
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, config.ErrConfigNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoShowFile) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, dateutil.ErrInvalidStampFormat) ||
		errors.Is(err, slideshow.ErrNoImages) ||
		errors.Is(err, slideshow.ErrNoPages) ||
		errors.Is(err, slideshow.ErrInvalidCanvas) ||
		errors.Is(err, slideshow.ErrInvalidMargin) ||
		errors.Is(err, slideshow.ErrInvalidCaptionBand) ||
		errors.Is(err, slideshow.ErrInvalidFontSize) {
		return ExitUsage
	}

	return ExitGeneral
}
