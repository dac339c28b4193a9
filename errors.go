package slideshow

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoImages = errors.New("image list cannot be empty")
	ErrNoPages  = errors.New("no pages produced, every image was skipped")
	ErrPDFWrite = errors.New("failed to write PDF file")

	// Per-image errors. These are contained by Generate (the image is
	// skipped) but surface through the prober and downscaler.
	ErrImageNotFound   = errors.New("image file not found")
	ErrImageUnreadable = errors.New("failed to read image dimensions")
	ErrImageDownscale  = errors.New("failed to downscale image")

	// Geometry validation errors.
	ErrInvalidCanvas      = errors.New("invalid canvas size")
	ErrInvalidMargin      = errors.New("invalid margin")
	ErrInvalidCaptionBand = errors.New("invalid caption band height")
	ErrInvalidFontSize    = errors.New("invalid font size")
)
