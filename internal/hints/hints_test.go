package hints

import (
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Run("suggests a user config path when searched", func(t *testing.T) {
		hint := ForConfigNotFound([]string{
			"trip.yaml",
			"/home/me/.config/slideshow/trip.yaml",
		})
		if !strings.Contains(hint, "/home/me/.config/slideshow/trip.yaml") {
			t.Errorf("hint = %q, want user config path", hint)
		}
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("hint = %q, want standard prefix", hint)
		}
	})

	t.Run("falls back to the path suggestion", func(t *testing.T) {
		hint := ForConfigNotFound([]string{"trip.yaml"})
		if !strings.Contains(hint, "show.yaml") {
			t.Errorf("hint = %q", hint)
		}
	})
}

func TestFormattingConsistency(t *testing.T) {
	for name, hint := range map[string]string{
		"ForNoImages":   ForNoImages(),
		"ForAllSkipped": ForAllSkipped(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s = %q, want standard prefix", name, hint)
		}
	}
}
