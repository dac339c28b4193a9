// Package slideshow assembles an ordered list of images into a single
// multi-page PDF, one image per page, scaled to fit a fixed canvas while
// preserving aspect ratio.
//
// # Quick Start
//
// Create a service, describe the show, and generate:
//
//	svc := slideshow.New(slideshow.WithOutputDir("out"))
//	result, err := svc.Generate(slideshow.Spec{
//	    Title:    "Summer 2025",
//	    Subtitle: "Road trip",
//	    Images: []slideshow.ImageEntry{
//	        {Path: "photos/beach.jpg", Caption: "Day one"},
//	        {Path: "photos/cliffs.png"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
//
// # Page Assembly
//
// Generation follows these stages:
//
//  1. Optional title page (drawn when Spec.Title is non-empty)
//  2. One page per image: existence check, dimension probe, fit-to-box
//     placement, optional caption below the image
//  3. Finalize: the document is written to
//     {sanitized-title}_{timestamp}.pdf in the output directory
//
// Images that are missing or unreadable are logged and skipped; a bad
// image never aborts the run. Only an empty image list or a failure
// writing the final document is fatal.
//
// # Layout
//
// Every page reserves a fixed caption band below the image area, whether
// or not the current image has a caption, so images keep the same
// vertical anchor across the whole document. FitSize and TitleLayout are
// exported for callers that want to reproduce the geometry.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := slideshow.New(
//	    slideshow.WithOutputDir("/var/slides"),
//	    slideshow.WithGeometry(geom),
//	    slideshow.WithMaxImageWidth(1600),
//	    slideshow.WithProgressWriter(os.Stdout),
//	)
//
// Images wider than the configured pixel limit are downscaled and
// re-encoded before embedding to keep output files small.
package slideshow
