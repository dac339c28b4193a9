package slideshow

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"testing"
)

// writeTestPNG creates a solid-color PNG at path for probe/draw tests.
func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	writeTestImage(t, path, w, h, func(f *os.File, img image.Image) error {
		return png.Encode(f, img)
	})
}

// writeTestJPEG creates a solid-color JPEG at path.
func writeTestJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	writeTestImage(t, path, w, h, func(f *os.File, img image.Image) error {
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	})
}

func writeTestImage(t *testing.T, path string, w, h int, encode func(*os.File, image.Image) error) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill := color.RGBA{R: 40, G: 90, B: 160, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := encode(f, img); err != nil {
		_ = f.Close()
		t.Fatalf("setup: encoding image: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("setup: %v", err)
	}
}
