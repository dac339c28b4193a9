package slideshow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPDFWriter(t *testing.T) {
	g := DefaultPageGeometry()

	t.Run("page count tracks AddPage", func(t *testing.T) {
		w := newPDFWriter(g)
		if w.PageCount() != 0 {
			t.Fatalf("PageCount() = %d before any page", w.PageCount())
		}
		w.AddPage()
		w.AddPage()
		if w.PageCount() != 2 {
			t.Errorf("PageCount() = %d, want 2", w.PageCount())
		}
	})

	t.Run("output writes a PDF file", func(t *testing.T) {
		dir := t.TempDir()
		imgPath := filepath.Join(dir, "img.png")
		writeTestPNG(t, imgPath, 800, 600)

		w := newPDFWriter(g)
		w.AddPage()
		w.DrawText(textRun{text: "Title", size: g.TitleFontSize, style: "B", box: lineBox(g, 200, g.TitleFontSize)})
		w.AddPage()
		w.DrawImage(imgPath, g.ImageBox(), Dimensions{Width: 800, Height: 600})
		w.DrawText(textRun{text: "A caption with accents: café", size: g.CaptionFontSize, box: lineBox(g, 520, g.CaptionFontSize)})

		outPath := filepath.Join(dir, "out.pdf")
		if err := w.Output(outPath); err != nil {
			t.Fatalf("Output() error = %v", err)
		}

		data, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !strings.HasPrefix(string(data), "%PDF") {
			t.Errorf("output does not start with %%PDF header")
		}
	})

	t.Run("output to unwritable path returns an error", func(t *testing.T) {
		w := newPDFWriter(g)
		w.AddPage()
		if err := w.Output(filepath.Join(t.TempDir(), "missing", "out.pdf")); err == nil {
			t.Error("Output() = nil, want error for missing directory")
		}
	})
}
