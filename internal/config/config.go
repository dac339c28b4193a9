// Package config loads slideshow definitions from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("slideshow file not found")
	ErrEmptyConfigName = errors.New("slideshow file name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse slideshow file")
	ErrConfigTooLarge  = errors.New("slideshow file exceeds maximum size")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// MaxConfigSize limits YAML input to prevent memory exhaustion (1MB).
const MaxConfigSize = 1 << 20

// Field length limits.
const (
	MaxTitleLength    = 200  // Title page heading
	MaxSubtitleLength = 200  // Title page subtitle
	MaxCaptionLength  = 500  // Per-image caption
	MaxPathLength     = 4096 // Image or directory path
)

// Config is the on-disk slideshow definition.
type Config struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Images   []ImageConfig `yaml:"images"`
	Output   OutputConfig  `yaml:"output"`
}

// ImageConfig is one slide entry.
type ImageConfig struct {
	Src     string `yaml:"src"`
	Caption string `yaml:"caption"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir             string `yaml:"dir"`             // Output directory (empty = current directory)
	TimestampFormat string `yaml:"timestampFormat"` // Filename timestamp tokens (empty = YYYYMMDD_HHmmss)
	MaxImageWidth   int    `yaml:"maxImageWidth"`   // Downscale images wider than this, in pixels (0 = off)
}

// Validate checks field lengths and value ranges. Called automatically
// by Load, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("title", c.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("subtitle", c.Subtitle, MaxSubtitleLength); err != nil {
		return err
	}
	for i, img := range c.Images {
		if err := validateFieldLength(fmt.Sprintf("images[%d].src", i), img.Src, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("images[%d].caption", i), img.Caption, MaxCaptionLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if c.Output.MaxImageWidth < 0 {
		return fmt.Errorf("output.maxImageWidth: must be >= 0, got %d", c.Output.MaxImageWidth)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Load loads a slideshow definition from a file path or name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath, err := Resolve(nameOrPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading slideshow file: %w", err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Resolve maps a slideshow name or path to a concrete file path.
// Strings containing a path separator are treated as paths and returned
// unchanged; bare names are searched in standard locations.
func Resolve(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		return "", ErrEmptyConfigName
	}
	if isFilePath(nameOrPath) {
		return nameOrPath, nil
	}
	return resolveConfigPath(nameOrPath)
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SearchPaths returns the candidate file paths Load tries for a
// slideshow name, in search order. Used for error hints.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "slideshow", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a slideshow file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/slideshow/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "slideshow", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
