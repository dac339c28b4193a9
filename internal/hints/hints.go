// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for slideshow file not found errors.
// Suggests creating a show file in a searched user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "pass a path like ./show.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/slideshow") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoImages returns a hint for an empty images list.
func ForNoImages() string {
	return format("add an images: list with src: entries to the slideshow file")
}

// ForAllSkipped returns a hint when every image in the show was skipped.
// Relative src paths are resolved against the slideshow file's directory.
func ForAllSkipped() string {
	return format("image paths are resolved relative to the slideshow file")
}

// format produces a single hint line.
func format(hint string) string {
	return "\n  hint: " + hint
}
