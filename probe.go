package slideshow

import (
	"fmt"
	"image"
	"os"

	// Decoders for the formats the PDF writer can embed.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// probeDimensions reads the natural pixel dimensions of the image at
// path without decoding the full pixel data. The caller has already
// checked that the file exists; any failure here means the header is
// unreadable or the format is unsupported.
func probeDimensions(path string) (Dimensions, error) {
	f, err := os.Open(path) // #nosec G304 -- image paths come from the user's slideshow spec
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %s: %v", ErrImageUnreadable, path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %s: %v", ErrImageUnreadable, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Dimensions{}, fmt.Errorf("%w: %s: zero-sized image", ErrImageUnreadable, path)
	}

	return Dimensions{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
}
