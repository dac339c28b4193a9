package slideshow

// Vertical offsets from the canvas center for the title page, in
// points. The title sits higher when a subtitle follows it.
const (
	titleOffsetWithSubtitle = -80.0
	titleOffsetAlone        = -50.0
	subtitleOffset          = -20.0
)

// FitSize returns the largest size that fits natural inside box while
// preserving the aspect ratio exactly. The binding axis is tight: at
// least one of the returned dimensions equals the box dimension.
//
// Inputs are assumed positive; behavior is undefined for zero or
// negative dimensions.
func FitSize(natural, box Dimensions) Dimensions {
	scale := box.Width / natural.Width
	if vertical := box.Height / natural.Height; vertical < scale {
		scale = vertical
	}
	return Dimensions{
		Width:  natural.Width * scale,
		Height: natural.Height * scale,
	}
}

// TitleLayout returns the vertical positions of the title line and the
// subtitle line on the title page, as offsets from the top of the
// canvas. Both lines span the full content width, center-aligned; the
// caller draws them with the geometry's title and subtitle fonts.
//
// subtitleY is meaningful only when hasSubtitle is true.
func TitleLayout(g PageGeometry, hasSubtitle bool) (titleY, subtitleY float64) {
	center := g.CanvasHeight / 2
	if hasSubtitle {
		return center + titleOffsetWithSubtitle, center + subtitleOffset
	}
	return center + titleOffsetAlone, center + subtitleOffset
}
