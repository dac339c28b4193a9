package slideshow

import (
	"github.com/jung-kurt/gofpdf"
)

// textRun is one text draw command: a string placed in a box with a
// font size and style, always center-aligned across the box width.
type textRun struct {
	text  string
	size  float64
	style string // "" regular, "B" bold
	box   Box
}

// documentWriter abstracts the PDF backend so page sequencing can be
// tested without producing real documents. Draw errors accumulate
// inside the writer and surface from Output.
type documentWriter interface {
	// AddPage starts a new physical page.
	AddPage()
	// DrawImage places the image at path inside box, scaled to fit and
	// horizontally centered, anchored at the top of the box.
	DrawImage(path string, box Box, natural Dimensions)
	// DrawText draws a single centered text run.
	DrawText(run textRun)
	// PageCount reports the number of pages started so far.
	PageCount() int
	// Output finalizes the document and writes it to path.
	Output(path string) error
}

// pdfWriter implements documentWriter on top of gofpdf.
type pdfWriter struct {
	pdf       *gofpdf.Fpdf
	geom      PageGeometry
	translate func(string) string
}

// newPDFWriter creates a writer with a fixed canvas in points.
func newPDFWriter(g PageGeometry) documentWriter {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: g.CanvasWidth, Ht: g.CanvasHeight},
	})
	// Pages are laid out explicitly; automatic breaks would fight the
	// fixed caption band.
	pdf.SetAutoPageBreak(false, 0)
	return &pdfWriter{
		pdf:       pdf,
		geom:      g,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (w *pdfWriter) AddPage() {
	w.pdf.AddPage()
}

func (w *pdfWriter) DrawImage(path string, box Box, natural Dimensions) {
	fit := FitSize(natural, box.Size())
	x := box.X + (box.W-fit.Width)/2
	opts := gofpdf.ImageOptions{ReadDpi: false}
	w.pdf.ImageOptions(path, x, box.Y, fit.Width, fit.Height, false, opts, 0, "")
}

func (w *pdfWriter) DrawText(run textRun) {
	w.pdf.SetFont(w.geom.FontFamily, run.style, run.size)
	w.pdf.SetXY(run.box.X, run.box.Y)
	w.pdf.CellFormat(run.box.W, run.box.H, w.translate(run.text), "", 0, "C", false, 0, "")
}

func (w *pdfWriter) PageCount() int {
	return w.pdf.PageCount()
}

func (w *pdfWriter) Output(path string) error {
	return w.pdf.OutputFileAndClose(path)
}
