package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	slideshow "github.com/conordavidson/slideshow-generator"
	"github.com/conordavidson/slideshow-generator/internal/config"
	"github.com/conordavidson/slideshow-generator/internal/fileutil"
	"github.com/conordavidson/slideshow-generator/internal/hints"
)

// ErrNoShowFile indicates the positional slideshow file argument is missing.
var ErrNoShowFile = errors.New("usage: slideshow [flags] <show.yaml>")

// run loads the slideshow file, applies flag overrides, and generates
// the PDF. Progress goes to out, warnings to errOut.
func run(flags *showFlags, args []string, out, errOut io.Writer) error {
	if len(args) < 1 {
		return ErrNoShowFile
	}
	showArg := args[0]

	showPath, err := config.Resolve(showArg)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(showArg) {
			return fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(showArg)))
		}
		return err
	}

	cfg, err := config.Load(showPath)
	if err != nil {
		return err
	}

	spec := buildSpec(cfg, flags, filepath.Dir(showPath))
	if len(spec.Images) == 0 {
		return fmt.Errorf("%w%s", slideshow.ErrNoImages, hints.ForNoImages())
	}

	outputDir := cfg.Output.Dir
	if flags.outputDir != "" {
		outputDir = flags.outputDir
	}
	maxWidth := cfg.Output.MaxImageWidth
	if flags.maxWidth > 0 {
		maxWidth = flags.maxWidth
	}
	stampFormat := cfg.Output.TimestampFormat
	if flags.stampFormat != "" {
		stampFormat = flags.stampFormat
	}

	opts := []slideshow.Option{
		slideshow.WithMaxImageWidth(maxWidth),
		slideshow.WithWarningWriter(errOut),
	}
	if outputDir != "" {
		opts = append(opts, slideshow.WithOutputDir(outputDir))
	}
	if stampFormat != "" {
		opts = append(opts, slideshow.WithTimestampFormat(stampFormat))
	}
	if flags.verbose {
		opts = append(opts, slideshow.WithProgressWriter(out))
	}
	if flags.quiet {
		opts = append(opts, slideshow.WithWarningWriter(io.Discard))
	}

	if !flags.quiet {
		fmt.Fprintf(out, "Generating slideshow: %s\n", displayTitle(spec.Title))
		if spec.Subtitle != "" {
			fmt.Fprintf(out, "Subtitle: %s\n", spec.Subtitle)
		}
		fmt.Fprintf(out, "Images: %d\n", len(spec.Images))
	}

	result, err := slideshow.New(opts...).Generate(spec)
	if err != nil {
		if errors.Is(err, slideshow.ErrNoPages) {
			return fmt.Errorf("%w%s", err, hints.ForAllSkipped())
		}
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(out, "Created %s (%d pages, %d skipped)\n",
			result.OutputPath, result.PagesWritten, result.ImagesSkipped)
	}
	return nil
}

// buildSpec merges the slideshow file with flag overrides and resolves
// relative image paths against the slideshow file's directory.
func buildSpec(cfg *config.Config, flags *showFlags, baseDir string) slideshow.Spec {
	spec := slideshow.Spec{
		Title:    cfg.Title,
		Subtitle: cfg.Subtitle,
		Images:   make([]slideshow.ImageEntry, len(cfg.Images)),
	}
	if flags.title != "" {
		spec.Title = flags.title
	}
	if flags.subtitle != "" {
		spec.Subtitle = flags.subtitle
	}

	for i, img := range cfg.Images {
		path := img.Src
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		spec.Images[i] = slideshow.ImageEntry{Path: path, Caption: img.Caption}
	}
	return spec
}

// displayTitle never prints an empty title.
func displayTitle(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}
