package slideshow

import (
	"fmt"
	"io"
)

// ImageEntry is one slide: an image path plus an optional caption.
// Entries are immutable; list order determines page order.
type ImageEntry struct {
	Path    string // Path to a JPEG, PNG, or GIF file (required)
	Caption string // Caption drawn below the image (optional)
}

// Spec describes a whole slideshow.
type Spec struct {
	Title    string       // Title page heading; empty = no title page
	Subtitle string       // Drawn below the title (ignored without a title)
	Images   []ImageEntry // Ordered; must be non-empty
}

// Dimensions holds a width/height pair, in pixels (natural image size)
// or points (computed fit size).
type Dimensions struct {
	Width  float64
	Height float64
}

// Box is a rectangular drawing area on the canvas, in points.
type Box struct {
	X, Y, W, H float64
}

// Size returns the box extent as Dimensions.
func (b Box) Size() Dimensions {
	return Dimensions{Width: b.W, Height: b.H}
}

// Default page geometry, in points. Letter landscape with a uniform
// margin and a band below the image area reserved for captions.
const (
	DefaultCanvasWidth  = 792.0
	DefaultCanvasHeight = 612.0
	DefaultMargin       = 50.0
	DefaultCaptionBand  = 60.0

	DefaultTitleFontSize    = 36.0
	DefaultSubtitleFontSize = 24.0
	DefaultCaptionFontSize  = 14.0

	DefaultFontFamily = "Helvetica"
)

// captionOffset is the gap between the bottom edge of the drawn image
// and the caption baseline box, in points.
const captionOffset = 30.0

// PageGeometry holds the fixed per-page layout constants. All pages of
// a document share one geometry; there is no per-page variation.
type PageGeometry struct {
	CanvasWidth  float64 // Page width in points
	CanvasHeight float64 // Page height in points
	Margin       float64 // Uniform margin on all four sides
	CaptionBand  float64 // Height reserved below the image area

	TitleFontSize    float64
	SubtitleFontSize float64
	CaptionFontSize  float64
	FontFamily       string
}

// DefaultPageGeometry returns the standard letter-landscape geometry.
func DefaultPageGeometry() PageGeometry {
	return PageGeometry{
		CanvasWidth:      DefaultCanvasWidth,
		CanvasHeight:     DefaultCanvasHeight,
		Margin:           DefaultMargin,
		CaptionBand:      DefaultCaptionBand,
		TitleFontSize:    DefaultTitleFontSize,
		SubtitleFontSize: DefaultSubtitleFontSize,
		CaptionFontSize:  DefaultCaptionFontSize,
		FontFamily:       DefaultFontFamily,
	}
}

// Validate checks that the geometry leaves a positive drawing area.
func (g PageGeometry) Validate() error {
	if g.CanvasWidth <= 0 || g.CanvasHeight <= 0 {
		return fmt.Errorf("%w: %.0fx%.0f", ErrInvalidCanvas, g.CanvasWidth, g.CanvasHeight)
	}
	if g.Margin < 0 || 2*g.Margin >= g.CanvasWidth || 2*g.Margin >= g.CanvasHeight {
		return fmt.Errorf("%w: %.0f", ErrInvalidMargin, g.Margin)
	}
	if g.CaptionBand < 0 || g.CaptionBand >= g.CanvasHeight-2*g.Margin {
		return fmt.Errorf("%w: %.0f", ErrInvalidCaptionBand, g.CaptionBand)
	}
	for _, size := range []float64{g.TitleFontSize, g.SubtitleFontSize, g.CaptionFontSize} {
		if size <= 0 {
			return fmt.Errorf("%w: %.1f", ErrInvalidFontSize, size)
		}
	}
	return nil
}

// ContentWidth returns the horizontal space between the margins.
func (g PageGeometry) ContentWidth() float64 {
	return g.CanvasWidth - 2*g.Margin
}

// ImageBox returns the area available for image placement: the canvas
// minus margins, minus the caption band. The band is subtracted on
// every page, caption or not, so images share one vertical anchor
// across the document.
func (g PageGeometry) ImageBox() Box {
	return Box{
		X: g.Margin,
		Y: g.Margin,
		W: g.ContentWidth(),
		H: g.CanvasHeight - 2*g.Margin - g.CaptionBand,
	}
}

// Result summarizes a completed run.
type Result struct {
	OutputPath    string // Absolute or outputDir-relative path of the PDF
	PagesWritten  int    // Physical pages, title page included
	ImagesSkipped int    // Entries dropped for missing/unreadable files
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	outputDir     string
	geometry      PageGeometry
	maxImageWidth int
	progress      io.Writer
	warnings      io.Writer
}

// WithOutputDir sets the directory the PDF is written into.
// Defaults to the current directory.
func WithOutputDir(dir string) Option {
	return func(s *Service) {
		s.cfg.outputDir = dir
	}
}

// WithGeometry replaces the default page geometry.
// The geometry is validated at Generate time, not here.
func WithGeometry(g PageGeometry) Option {
	return func(s *Service) {
		s.cfg.geometry = g
	}
}

// WithMaxImageWidth sets the pixel width above which images are
// downscaled before embedding. Zero disables downscaling.
// Panics if w < 0 (programmer error, similar to time.NewTicker).
func WithMaxImageWidth(w int) Option {
	if w < 0 {
		panic("slideshow: WithMaxImageWidth must be >= 0")
	}
	return func(s *Service) {
		s.cfg.maxImageWidth = w
	}
}

// WithProgressWriter directs per-page progress lines to w.
// Progress is discarded by default.
func WithProgressWriter(w io.Writer) Option {
	return func(s *Service) {
		s.cfg.progress = w
	}
}

// WithWarningWriter directs per-image skip warnings to w.
// Defaults to os.Stderr.
func WithWarningWriter(w io.Writer) Option {
	return func(s *Service) {
		s.cfg.warnings = w
	}
}
