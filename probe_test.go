package slideshow

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProbeDimensions(t *testing.T) {
	t.Run("reads PNG dimensions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "img.png")
		writeTestPNG(t, path, 640, 480)

		dims, err := probeDimensions(path)
		if err != nil {
			t.Fatalf("probeDimensions() error = %v", err)
		}
		if dims.Width != 640 || dims.Height != 480 {
			t.Errorf("dims = %v, want 640x480", dims)
		}
	})

	t.Run("reads JPEG dimensions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "img.jpg")
		writeTestJPEG(t, path, 1920, 1080)

		dims, err := probeDimensions(path)
		if err != nil {
			t.Fatalf("probeDimensions() error = %v", err)
		}
		if dims.Width != 1920 || dims.Height != 1080 {
			t.Errorf("dims = %v, want 1920x1080", dims)
		}
	})

	t.Run("corrupt file returns ErrImageUnreadable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.png")
		if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := probeDimensions(path)
		if !errors.Is(err, ErrImageUnreadable) {
			t.Errorf("error = %v, want ErrImageUnreadable", err)
		}
	})

	t.Run("missing file returns ErrImageUnreadable", func(t *testing.T) {
		_, err := probeDimensions(filepath.Join(t.TempDir(), "gone.png"))
		if !errors.Is(err, ErrImageUnreadable) {
			t.Errorf("error = %v, want ErrImageUnreadable", err)
		}
	})

	t.Run("error message names the path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.png")
		if err := os.WriteFile(path, []byte{0x89, 0x50}, 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := probeDimensions(path)
		if err == nil || !strings.Contains(err.Error(), path) {
			t.Errorf("error %q does not mention %q", err, path)
		}
	})
}
