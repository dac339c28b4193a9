package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// showFlags holds all flags for the slideshow CLI. Flag values override
// the corresponding fields of the slideshow file.
type showFlags struct {
	outputDir   string
	title       string
	subtitle    string
	maxWidth    int
	stampFormat string

	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*showFlags, []string, error) {
	fs := flag.NewFlagSet("slideshow", flag.ContinueOnError)
	f := &showFlags{}

	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory (default: from file, else current dir)")
	fs.StringVar(&f.title, "title", "", "override slideshow title")
	fs.StringVar(&f.subtitle, "subtitle", "", "override slideshow subtitle")
	fs.IntVar(&f.maxWidth, "max-width", 0, "downscale images wider than this many pixels (0 = off)")
	fs.StringVar(&f.stampFormat, "timestamp-format", "", "filename timestamp tokens, e.g. YYYYMMDD_HHmmss")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page progress")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
