package slideshow

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"golang.org/x/image/draw"

	"github.com/conordavidson/slideshow-generator/internal/fileutil"
)

// jpegQuality is used when re-encoding downscaled images.
const jpegQuality = 85

// downscaleImage resizes the image at path so its width equals maxWidth
// (height scaled proportionally), re-encodes it as JPEG, and writes the
// result to a temporary file. Returns the temp path, the new pixel
// dimensions, and a cleanup func that removes the temp file.
//
// The caller only invokes this for images wider than maxWidth; callers
// should fall back to the original file on error.
func downscaleImage(path string, maxWidth int) (string, Dimensions, func(), error) {
	f, err := os.Open(path) // #nosec G304 -- image paths come from the user's slideshow spec
	if err != nil {
		return "", Dimensions{}, nil, fmt.Errorf("%w: %s: %v", ErrImageDownscale, path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", Dimensions{}, nil, fmt.Errorf("%w: %s: %v", ErrImageDownscale, path, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth {
		return "", Dimensions{}, nil, fmt.Errorf("%w: %s: already %dpx wide", ErrImageDownscale, path, w)
	}

	newH := h * maxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", Dimensions{}, nil, fmt.Errorf("%w: %s: %v", ErrImageDownscale, path, err)
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(buf.Bytes(), "jpg")
	if err != nil {
		return "", Dimensions{}, nil, fmt.Errorf("%w: %s: %v", ErrImageDownscale, path, err)
	}

	return tmpPath, Dimensions{Width: float64(maxWidth), Height: float64(newH)}, cleanup, nil
}
