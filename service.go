package slideshow

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/conordavidson/slideshow-generator/internal/dateutil"
	"github.com/conordavidson/slideshow-generator/internal/fileutil"
)

// lineHeightFactor converts a font size into a text cell height.
const lineHeightFactor = 1.25

// Service assembles slideshow PDFs. Collaborators are injectable for
// tests and defaulted in New.
type Service struct {
	cfg         serviceConfig
	stampFormat string

	probe      func(path string) (Dimensions, error)
	newWriter  func(g PageGeometry) documentWriter
	fileExists func(path string) bool
	now        func() time.Time
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithOutputDir).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			outputDir: ".",
			geometry:  DefaultPageGeometry(),
			progress:  io.Discard,
			warnings:  os.Stderr,
		},
		stampFormat: dateutil.DefaultStampFormat,
		probe:       probeDimensions,
		newWriter:   newPDFWriter,
		fileExists:  fileutil.FileExists,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithTimestampFormat overrides the filename timestamp format.
// Tokens: YYYY, YY, MM, DD, HH, mm, ss (see internal/dateutil).
// The format is validated at Generate time.
func WithTimestampFormat(format string) Option {
	return func(s *Service) {
		s.stampFormat = format
	}
}

// Generate runs the whole pipeline: validates the spec, draws the
// optional title page and one page per valid image, and writes the
// document to the output directory.
//
// Per-image failures (missing entry, missing file, unreadable header)
// are logged to the warning writer and skipped; they never abort the
// run and never produce a blank page. An empty image list, a run where
// every page was skipped, and a failure writing the final document are
// fatal.
func (s *Service) Generate(spec Spec) (Result, error) {
	if len(spec.Images) == 0 {
		return Result{}, ErrNoImages
	}
	if err := s.cfg.geometry.Validate(); err != nil {
		return Result{}, err
	}

	// Resolve the output filename up front so a bad timestamp format
	// fails before any drawing happens.
	stamp, err := dateutil.FormatStamp(s.now(), s.stampFormat)
	if err != nil {
		return Result{}, err
	}
	outPath := filepath.Join(s.cfg.outputDir, fileutil.OutputFilename(spec.Title, stamp))

	w := s.newWriter(s.cfg.geometry)

	if spec.Title != "" {
		s.drawTitlePage(w, spec)
		s.progressf("added title page: %s", spec.Title)
	}

	skipped := 0
	var cleanups []func()
	defer func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	for i, entry := range spec.Images {
		if entry.Path == "" {
			s.warnf("warning: skipping image %d: no path", i)
			skipped++
			continue
		}
		if !s.fileExists(entry.Path) {
			s.warnf("warning: skipping image %d: %s: file not found", i, entry.Path)
			skipped++
			continue
		}
		natural, err := s.probe(entry.Path)
		if err != nil {
			s.warnf("warning: skipping image %d: %v", i, err)
			skipped++
			continue
		}

		path := entry.Path
		if s.cfg.maxImageWidth > 0 && natural.Width > float64(s.cfg.maxImageWidth) {
			scaled, dims, cleanup, err := downscaleImage(path, s.cfg.maxImageWidth)
			if err != nil {
				// Embedding the original is always a safe fallback.
				s.warnf("warning: %v, embedding original", err)
			} else {
				cleanups = append(cleanups, cleanup)
				path, natural = scaled, dims
			}
		}

		s.drawImagePage(w, path, natural, entry.Caption)
		s.progressf("added image %d/%d: %s", i+1, len(spec.Images), entry.Path)
	}

	if w.PageCount() == 0 {
		return Result{ImagesSkipped: skipped}, ErrNoPages
	}

	if err := w.Output(outPath); err != nil {
		_ = os.Remove(outPath) // a partial file is not valid output
		return Result{ImagesSkipped: skipped}, fmt.Errorf("%w: %v", ErrPDFWrite, err)
	}

	return Result{
		OutputPath:    outPath,
		PagesWritten:  w.PageCount(),
		ImagesSkipped: skipped,
	}, nil
}

// drawTitlePage draws the centered title line and, when present, the
// subtitle line below it.
func (s *Service) drawTitlePage(w documentWriter, spec Spec) {
	g := s.cfg.geometry
	hasSubtitle := spec.Subtitle != ""
	titleY, subtitleY := TitleLayout(g, hasSubtitle)

	w.AddPage()
	w.DrawText(textRun{
		text:  spec.Title,
		size:  g.TitleFontSize,
		style: "B",
		box:   lineBox(g, titleY, g.TitleFontSize),
	})
	if hasSubtitle {
		w.DrawText(textRun{
			text: spec.Subtitle,
			size: g.SubtitleFontSize,
			box:  lineBox(g, subtitleY, g.SubtitleFontSize),
		})
	}
}

// drawImagePage draws one image page: the image fit into the image box,
// and the caption (if any) a fixed offset below the bottom edge of the
// scaled image, so caption placement tracks actual image height rather
// than the reserved band.
func (s *Service) drawImagePage(w documentWriter, path string, natural Dimensions, caption string) {
	g := s.cfg.geometry
	box := g.ImageBox()

	w.AddPage()
	w.DrawImage(path, box, natural)

	if caption != "" {
		fit := FitSize(natural, box.Size())
		w.DrawText(textRun{
			text: caption,
			size: g.CaptionFontSize,
			box:  lineBox(g, box.Y+fit.Height+captionOffset, g.CaptionFontSize),
		})
	}
}

// lineBox returns a full-content-width text box at the given vertical
// position.
func lineBox(g PageGeometry, y, fontSize float64) Box {
	return Box{
		X: g.Margin,
		Y: y,
		W: g.ContentWidth(),
		H: fontSize * lineHeightFactor,
	}
}

// progressf writes one progress line to the configured progress writer.
func (s *Service) progressf(format string, args ...any) {
	fmt.Fprintf(s.cfg.progress, format+"\n", args...)
}

// warnf writes one warning line to the configured warning writer.
func (s *Service) warnf(format string, args ...any) {
	fmt.Fprintf(s.cfg.warnings, format+"\n", args...)
}
