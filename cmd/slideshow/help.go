package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: slideshow [flags] <show.yaml>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble the images listed in a slideshow file into one PDF,")
	fmt.Fprintln(w, "one image per page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  show.yaml    Slideshow file (path, or bare name searched in")
	fmt.Fprintln(w, "               the current dir and ~/.config/slideshow/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output-dir <dir>        Output directory")
	fmt.Fprintln(w, "      --timestamp-format <s>    Filename timestamp tokens")
	fmt.Fprintln(w, "                                Tokens: YYYY, YY, MM, DD, HH, mm, ss")
	fmt.Fprintln(w, "                                Use [text] to escape literals")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content overrides:")
	fmt.Fprintln(w, "      --title <s>               Override slideshow title")
	fmt.Fprintln(w, "      --subtitle <s>            Override slideshow subtitle")
	fmt.Fprintln(w, "      --max-width <n>           Downscale images wider than n pixels")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show per-page progress")
	fmt.Fprintln(w, "      --version                 Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Slideshow file format:")
	fmt.Fprintln(w, "  title: Summer 2025")
	fmt.Fprintln(w, "  subtitle: Road trip")
	fmt.Fprintln(w, "  images:")
	fmt.Fprintln(w, "    - src: photos/beach.jpg")
	fmt.Fprintln(w, "      caption: Day one")
	fmt.Fprintln(w, "    - src: photos/cliffs.png")
	fmt.Fprintln(w, "  output:")
	fmt.Fprintln(w, "    dir: out")
}
